package session

import "strings"

// ProbeVerdict is the outcome of reading a failed login's error text.
type ProbeVerdict int

const (
	// AccountExists means the failure looked like a password mismatch, so
	// the address is registered.
	AccountExists ProbeVerdict = iota
	// AccountNotFound means the failure mentioned the user or address.
	AccountNotFound
)

// notFoundTokens are the error-message fragments the backend is known to use
// when an address is not registered.
var notFoundTokens = []string{"user", "account", "email", "not found"}

// ClassifyLoginFailure infers account existence from a login error message.
// The backend offers no existence endpoint, so this heuristic is all there
// is; a transient error whose text happens to mention one of the tokens is
// indistinguishable from a true "not registered". Keep every caller going
// through this one function.
func ClassifyLoginFailure(message string) ProbeVerdict {
	lower := strings.ToLower(message)
	for _, token := range notFoundTokens {
		if strings.Contains(lower, token) {
			return AccountNotFound
		}
	}
	return AccountExists
}
