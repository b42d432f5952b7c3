package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aksecuretech/portal-go/client"
	"github.com/aksecuretech/portal-go/dto"
)

const (
	MsgNotRegistered    = "Email address not registered"
	MsgResetLinkSent    = "Password reset link has been sent to your email"
	MsgResetLinkFailed  = "Failed to send reset link"
	probePasswordPrefix = "Action_Verify_User_"
)

// ResetState is pushed to the flow's observer as the chain progresses.
type ResetState struct {
	Loading bool
	Sent    bool
	Message string
}

// ResetFlow requests a password-reset email, first inferring whether the
// address is registered at all. The backend has no existence endpoint, so
// the flow issues a login attempt with a password that cannot match and
// reads the shape of the resulting error.
type ResetFlow struct {
	api     *client.Client
	log     zerolog.Logger
	onState func(ResetState)

	mu     sync.Mutex
	closed bool
}

type ResetOption func(*ResetFlow)

func WithResetLogger(log zerolog.Logger) ResetOption {
	return func(f *ResetFlow) { f.log = log }
}

// WithStateObserver registers a callback for intermediate state. After
// Close, the observer is never called again, but in-flight requests run to
// completion rather than being cancelled.
func WithStateObserver(fn func(ResetState)) ResetOption {
	return func(f *ResetFlow) { f.onState = fn }
}

func NewResetFlow(api *client.Client, opts ...ResetOption) *ResetFlow {
	f := &ResetFlow{api: api, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Close suppresses further observer calls, for when the owning view is torn
// down mid-chain.
func (f *ResetFlow) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

// probePassword is guaranteed not to match any real password.
func probePassword() string {
	return probePasswordPrefix + uuid.NewString()
}

// Run executes the full chain: probe login, classify, then request the reset
// email. The returned state is final; the observer sees it too unless the
// flow was closed.
func (f *ResetFlow) Run(ctx context.Context, email string) ResetState {
	f.deliver(ResetState{Loading: true})

	err := f.api.Post(ctx, "/auth/login", dto.LoginInput{Email: email, Password: probePassword()}, nil)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && ClassifyLoginFailure(apiErr.Message) == AccountNotFound {
			f.log.Info().Str("email", email).Msg("reset denied: address not registered")
			return f.finish(ResetState{Message: MsgNotRegistered})
		}
		// A password-shaped failure means the account exists; fall through
		// to the reset request.
	}
	// A successful probe login means a live account with a guessable
	// password was hit. Nothing special to do; the reset proceeds.

	if err := f.api.Post(ctx, "/auth/forgot-password", dto.ForgotPasswordInput{Email: email}, nil); err != nil {
		message := MsgResetLinkFailed
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != client.FallbackMessage {
			message = apiErr.Message
		}
		f.log.Warn().Str("email", email).Err(err).Msg("reset link request failed")
		return f.finish(ResetState{Message: message})
	}

	f.log.Info().Str("email", email).Msg("reset link sent")
	return f.finish(ResetState{Sent: true, Message: MsgResetLinkSent})
}

func (f *ResetFlow) finish(state ResetState) ResetState {
	f.deliver(state)
	return state
}

func (f *ResetFlow) deliver(state ResetState) {
	f.mu.Lock()
	closed := f.closed
	f.mu.Unlock()
	if closed || f.onState == nil {
		return
	}
	f.onState(state)
}
