package workflows

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksecuretech/portal-go/client"
	"github.com/aksecuretech/portal-go/dto"
	"github.com/aksecuretech/portal-go/models"
)

func TestReplyToTicket_PostsAndReturnsUpdatedEntity(t *testing.T) {
	var got dto.ReplyInput
	router := gin.New()
	router.POST("/tickets/:id/reply", func(c *gin.Context) {
		require.Equal(t, "t1", c.Param("id"))
		require.NoError(t, c.ShouldBindJSON(&got))
		c.JSON(http.StatusOK, gin.H{
			"_id":      "t1",
			"timeline": []gin.H{{"addedBy": "Admin", "note": got.Message, "authorRole": "admin"}},
		})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	updated, err := ReplyToTicket(context.Background(), client.New(srv.URL), "t1",
		dto.ReplyInput{Message: "Visit booked", ScheduledAt: at})
	require.NoError(t, err)
	assert.Equal(t, "Visit booked", got.Message)
	assert.Equal(t, at, got.ScheduledAt)
	require.Len(t, updated.Timeline, 1)
	assert.Equal(t, models.RoleAdmin, updated.Timeline[0].AuthorRole)
}

func TestUpdateTicket_SendsStatusAndVisit(t *testing.T) {
	var got dto.StatusUpdateInput
	router := gin.New()
	router.PUT("/tickets/:id", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&got))
		c.JSON(http.StatusOK, gin.H{"_id": c.Param("id"), "status": got.Status})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	visit := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	updated, err := UpdateTicket(context.Background(), client.New(srv.URL), "t9",
		dto.StatusUpdateInput{Status: "In Progress", AssignedVisitAt: &visit})
	require.NoError(t, err)
	assert.Equal(t, "In Progress", got.Status)
	require.NotNil(t, got.AssignedVisitAt)
	assert.Equal(t, visit, *got.AssignedVisitAt)
	assert.Equal(t, models.TicketStatusInProgress, updated.Status)
}

func TestStatusUpdateForm_RejectsUnknownStatus(t *testing.T) {
	form := NewTicketUpdateForm()
	form.Status = "Completed" // service request status, not a ticket one

	called := false
	err := form.Submit(context.Background(), func(context.Context, dto.StatusUpdateInput) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, called)
	assert.Contains(t, form.FieldErrors(), "status")
}

func TestStatusUpdateForm_SurfacesCallbackRejection(t *testing.T) {
	form := NewTicketUpdateForm()
	form.Status = string(models.TicketStatusClosed)
	form.VisitDateTime = "2025-06-11T12:00"

	err := form.Submit(context.Background(), func(_ context.Context, input dto.StatusUpdateInput) error {
		assert.Equal(t, "Closed", input.Status)
		require.NotNil(t, input.AssignedVisitAt)
		return &client.APIError{StatusCode: http.StatusConflict, Message: "already closed"}
	})
	require.Error(t, err)
	assert.Equal(t, "already closed", form.FieldErrors()["update"])
}

func TestServiceRequestUpdateForm_AcceptsItsOwnStatusSet(t *testing.T) {
	form := NewServiceRequestUpdateForm()
	form.Status = string(models.ServiceRequestStatusCompleted)

	err := form.Submit(context.Background(), func(context.Context, dto.StatusUpdateInput) error { return nil })
	assert.NoError(t, err)
}
