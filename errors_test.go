package hashlife

import (
	"strings"
	"testing"

	"github.com/flier/goutil/pkg/xerrors"
	"github.com/stretchr/testify/assert"
)

func TestReadMalformedHeaderReportsAsParseError(t *testing.T) {
	_, err := Read(strings.NewReader("not a header\nbo!\n"))
	assert.Error(t, err)

	pe, ok := xerrors.AsA[*ParseError](err)
	assert.True(t, ok)
	assert.Equal(t, HeaderError, pe.Kind)
	assert.Contains(t, pe.Error(), "header")
}

func TestReadMalformedBodyReportsAsParseError(t *testing.T) {
	_, err := Read(strings.NewReader("x = 1, y = 1\nzzz!\n"))
	assert.Error(t, err)

	pe, ok := xerrors.AsA[*ParseError](err)
	assert.True(t, ok)
	assert.Equal(t, BodyError, pe.Kind)
}

func TestOutOfMemoryErrorMessage(t *testing.T) {
	err := &OutOfMemoryError{Op: "intern"}
	assert.Contains(t, err.Error(), "intern")

	_, ok := xerrors.AsA[*ParseError](err)
	assert.False(t, ok)
}
