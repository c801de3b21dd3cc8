package csvio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodingError(t *testing.T) {
	cause := errors.New("bad quoting")
	err := &EncodingError{Path: "in.csv", Cause: cause}

	assert.Contains(t, err.Error(), "in.csv")
	assert.Contains(t, err.Error(), "bad quoting")
	assert.True(t, errors.Is(err, cause))

	bare := &EncodingError{Path: "in.csv"}
	assert.Contains(t, bare.Error(), "in.csv")
	assert.NoError(t, bare.Unwrap())
}

func TestWriteError(t *testing.T) {
	cause := errors.New("disk full")
	err := &WriteError{Path: "out.csv", Message: "failed to write rows", Cause: cause}

	assert.Contains(t, err.Error(), "out.csv")
	assert.Contains(t, err.Error(), "failed to write rows")
	assert.True(t, errors.Is(err, cause))
}
