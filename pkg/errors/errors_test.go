package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MissingEnvErr_Error(t *testing.T) {
	tests := []struct {
		name   string
		envMap map[string]string
		expMsg string
	}{
		{
			name:   "Happy path - Lists missing keys",
			envMap: map[string]string{"B": "", "A": "", "C": "set"},
			expMsg: "insufficient env variables: [A, B]",
		},
		{
			name:   "Happy path - No keys",
			expMsg: "insufficient env variables",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expMsg, MissingEnvErr{EnvMap: tt.envMap}.Error())
		})
	}
}

func Test_InvalidEnvErr(t *testing.T) {
	cause := errors.New("mock error")
	err := InvalidEnvErr{Key: "PORT", Err: cause}

	assert.Equal(t, "invalid env variable [PORT]: mock error", err.Error())
	assert.ErrorIs(t, err, cause)
}
