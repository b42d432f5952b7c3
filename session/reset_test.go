package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksecuretech/portal-go/client"
	"github.com/aksecuretech/portal-go/dto"
)

type resetBackend struct {
	loginMessage  string
	loginStatus   int
	forgotStatus  int
	forgotCalls   int
	probePassword string
}

func newResetBackend(t *testing.T, b *resetBackend) *client.Client {
	t.Helper()
	router := gin.New()
	router.POST("/auth/login", func(c *gin.Context) {
		var in dto.LoginInput
		require.NoError(t, c.ShouldBindJSON(&in))
		b.probePassword = in.Password
		if b.loginStatus == http.StatusOK {
			c.JSON(http.StatusOK, gin.H{"token": "t", "user": gin.H{"_id": "u1"}})
			return
		}
		c.JSON(b.loginStatus, gin.H{"message": b.loginMessage})
	})
	router.POST("/auth/forgot-password", func(c *gin.Context) {
		b.forgotCalls++
		if b.forgotStatus >= 400 {
			c.JSON(b.forgotStatus, gin.H{"message": "mailer offline"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

func TestResetFlow_UnregisteredAddressStopsBeforeReset(t *testing.T) {
	backend := &resetBackend{loginStatus: http.StatusNotFound, loginMessage: "User not found"}
	flow := NewResetFlow(newResetBackend(t, backend))

	state := flow.Run(context.Background(), "ghost@test.com")
	assert.False(t, state.Sent)
	assert.Equal(t, MsgNotRegistered, state.Message)
	assert.Equal(t, 0, backend.forgotCalls, "forgot-password must not be called")
}

func TestResetFlow_PasswordMismatchMeansAccountExists(t *testing.T) {
	backend := &resetBackend{loginStatus: http.StatusUnauthorized, loginMessage: "Invalid password"}
	flow := NewResetFlow(newResetBackend(t, backend))

	state := flow.Run(context.Background(), "alice@test.com")
	assert.True(t, state.Sent)
	assert.Equal(t, MsgResetLinkSent, state.Message)
	assert.Equal(t, 1, backend.forgotCalls)
}

func TestResetFlow_ProbePasswordCannotBeReal(t *testing.T) {
	backend := &resetBackend{loginStatus: http.StatusUnauthorized, loginMessage: "Invalid password"}
	flow := NewResetFlow(newResetBackend(t, backend))

	flow.Run(context.Background(), "alice@test.com")
	assert.True(t, strings.HasPrefix(backend.probePassword, "Action_Verify_User_"))
	assert.Greater(t, len(backend.probePassword), len("Action_Verify_User_"))
}

func TestResetFlow_ProbeLoginSuccessStillProceeds(t *testing.T) {
	backend := &resetBackend{loginStatus: http.StatusOK}
	flow := NewResetFlow(newResetBackend(t, backend))

	state := flow.Run(context.Background(), "weak@test.com")
	assert.True(t, state.Sent)
	assert.Equal(t, 1, backend.forgotCalls)
}

func TestResetFlow_ResetRequestFailureSurfacesServerMessage(t *testing.T) {
	backend := &resetBackend{
		loginStatus:  http.StatusUnauthorized,
		loginMessage: "Invalid password",
		forgotStatus: http.StatusBadGateway,
	}
	flow := NewResetFlow(newResetBackend(t, backend))

	state := flow.Run(context.Background(), "alice@test.com")
	assert.False(t, state.Sent)
	assert.Equal(t, "mailer offline", state.Message)
}

func TestResetFlow_CloseSuppressesObserverButNotTheChain(t *testing.T) {
	backend := &resetBackend{loginStatus: http.StatusUnauthorized, loginMessage: "Invalid password"}
	var observed []ResetState
	flow := NewResetFlow(newResetBackend(t, backend),
		WithStateObserver(func(s ResetState) { observed = append(observed, s) }))

	flow.Close()
	state := flow.Run(context.Background(), "alice@test.com")

	assert.Empty(t, observed, "closed flow must not deliver state")
	assert.True(t, state.Sent, "the chain itself still completes")
	assert.Equal(t, 1, backend.forgotCalls)
}
