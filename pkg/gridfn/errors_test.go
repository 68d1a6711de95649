package gridfn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "time", Message: "missing argument"}
	assert.Contains(t, err.Error(), "time")
	assert.Contains(t, err.Error(), "missing argument")

	err = &ValidationError{Message: "bad input"}
	assert.Equal(t, "validation error: bad input", err.Error())
}

func TestShapeMismatchError(t *testing.T) {
	err := &ShapeMismatchError{Dataset: "rho", Expected: []int{25, 12}, Actual: []int{12, 25}}
	assert.Contains(t, err.Error(), "rho")
	assert.Contains(t, err.Error(), "[25 12]")
	assert.Contains(t, err.Error(), "[12 25]")
}

func TestNotFoundErrorUnwrap(t *testing.T) {
	err := &NotFoundError{Name: "T"}
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"T"`)

	var nf *NotFoundError
	assert.True(t, errors.As(error(err), &nf))
	assert.Equal(t, "T", nf.Name)
}

func TestOutOfRangeError(t *testing.T) {
	err := &OutOfRangeError{Axis: "lon", Value: 190, Min: -180, Max: 180}
	assert.Contains(t, err.Error(), "lon")
	assert.Contains(t, err.Error(), "190")
}
