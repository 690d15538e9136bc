package contact

import (
	"testing"

	contacterrors "go-smbops/internal/contact/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseCSV(t *testing.T) {
	t.Run("case-insensitive header with BOM and spaces", func(t *testing.T) {
		data := "\xEF\xBB\xBF Name ,EMAIL,Phone,Company,Status,Notes\nAda,ada@example.com,123,Acme,client,vip\n"

		rows, err := ParseCSV([]byte(data))

		assert.NoError(t, err)
		assert.Equal(t, []CSVRow{{
			Name: "Ada", Email: "ada@example.com", Phone: "123", Company: "Acme", Status: "client", Notes: "vip",
		}}, rows)
	})

	t.Run("missing columns read as empty", func(t *testing.T) {
		rows, err := ParseCSV([]byte("name\nAda\nBob\n"))

		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "", rows[0].Email)
	})

	t.Run("short records", func(t *testing.T) {
		rows, err := ParseCSV([]byte("name,email,phone\nAda\n"))

		assert.NoError(t, err)
		assert.Equal(t, "Ada", rows[0].Name)
		assert.Equal(t, "", rows[0].Phone)
	})

	t.Run("empty file", func(t *testing.T) {
		rows, err := ParseCSV(nil)

		assert.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		_, err := ParseCSV([]byte{'n', 'a', 'm', 'e', '\n', 0xff, 0xfe})

		assert.ErrorIs(t, err, contacterrors.ErrInvalidEncoding)
	})

	t.Run("unterminated quote", func(t *testing.T) {
		_, err := ParseCSV([]byte("name\n\"Ada\n"))

		assert.ErrorIs(t, err, contacterrors.ErrInvalidCSV)
	})
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"":            StatusProspect,
		"Client":      StatusClient,
		"CLIENT":      StatusClient,
		" negotiation": StatusNegotiation,
		"prospect":    StatusProspect,
		"Lead":        StatusProspect,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeStatus(in), in)
	}
}
