package contact

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	contacterrors "go-smbops/internal/contact/errors"
)

var csvHeader = []string{"name", "email", "phone", "company", "status", "notes"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVRow is one parsed import line. Empty cells are empty strings.
type CSVRow struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Status  string
	Notes   string
}

// ParseCSV reads an upload with a header row. Header names are matched
// case-insensitively; unknown columns are ignored and missing ones read as empty.
func ParseCSV(data []byte) ([]CSVRow, error) {
	if !utf8.Valid(data) {
		return nil, contacterrors.ErrInvalidEncoding
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, contacterrors.ErrInvalidCSV.WithCause(err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	cell := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []CSVRow
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, contacterrors.ErrInvalidCSV.WithCause(err)
		}

		rows = append(rows, CSVRow{
			Name:    cell(record, "name"),
			Email:   cell(record, "email"),
			Phone:   cell(record, "phone"),
			Company: cell(record, "company"),
			Status:  cell(record, "status"),
			Notes:   cell(record, "notes"),
		})
	}

	return rows, nil
}

// NormalizeStatus maps free text onto a known status, defaulting to Prospect.
func NormalizeStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client":
		return StatusClient
	case "negotiation":
		return StatusNegotiation
	default:
		return StatusProspect
	}
}

type csvWriter struct {
	w *csv.Writer
}

func newCSVWriter(w io.Writer) *csvWriter {
	return &csvWriter{w: csv.NewWriter(w)}
}

func (cw *csvWriter) writeHeader() error {
	return cw.w.Write(csvHeader)
}

func (cw *csvWriter) writeContact(c *Contact) error {
	return cw.w.Write([]string{
		c.Name,
		deref(c.Email),
		deref(c.Phone),
		deref(c.CompanyName),
		c.Status,
		deref(c.Notes),
	})
}

func (cw *csvWriter) flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
