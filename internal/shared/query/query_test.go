package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assert.Equal(t, "%acme%", Contains("acme"))
	assert.Equal(t, `%50\%\_off%`, Contains("50%_off"))
	assert.Equal(t, `%a\\b%`, Contains(`a\b`))
}

func TestLimit(t *testing.T) {
	assert.Equal(t, 100, Limit(0))
	assert.Equal(t, 100, Limit(-3))
	assert.Equal(t, 7, Limit(7))
}
