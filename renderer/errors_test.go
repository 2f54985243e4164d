package renderer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil is success", nil, Success},
		{"shader", newError(ShaderError, "bad", nil), ShaderError},
		{"wrapped window", fmt.Errorf("boot: %w", newError(WindowError, "no window", nil)), WindowError},
		{"foreign", errors.New("something else"), Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "SHADER_ERROR", ShaderError.String())
	assert.Equal(t, "FILE_NOT_FOUND", FileNotFound.String())
	assert.Equal(t, "GLEW", LoaderError.String())
	assert.Equal(t, "WINDOW", WindowError.String())
	assert.Equal(t, "UNKNOWN", Unknown.String())
	assert.Equal(t, "SUCCESS", Success.String())
	assert.Equal(t, "ErrorKind(17)", ErrorKind(17).String())
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("GLX: no matching fbconfig")
	err := newError(WindowError, "glfw window could not be created", cause)
	assert.Equal(t, "WINDOW: glfw window could not be created: GLX: no matching fbconfig", err.Error())
	assert.ErrorIs(t, err, cause)

	loader := newError(LoaderError, "Missing GL version", errors.New("Missing GL version"))
	assert.Equal(t, "GLEW: Missing GL version", loader.Error())
}
