package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLoginFailure(t *testing.T) {
	cases := []struct {
		message string
		want    ProbeVerdict
	}{
		{"User not found", AccountNotFound},
		{"No account with that address", AccountNotFound},
		{"EMAIL does not exist", AccountNotFound},
		{"Resource not found", AccountNotFound},
		{"Invalid password", AccountExists},
		{"Invalid credentials", AccountExists},
		{"Too many attempts, slow down", AccountExists},
		// Known weakness: a transient failure whose text mentions a token
		// is indistinguishable from a true negative.
		{"email service unavailable", AccountNotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyLoginFailure(tc.message), "message: %q", tc.message)
	}
}
