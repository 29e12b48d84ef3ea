package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowTitle(t *testing.T) {
	assert.Equal(t, "diffuse lighting", windowTitle("diffuse lighting", nil))
	assert.Equal(t, "diffuse lighting [shader error]",
		windowTitle("diffuse lighting", errors.New("compile fragment shader: 0:12: syntax error")))
}
