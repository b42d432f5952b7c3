package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksecuretech/portal-go/models"
)

func TestIsAdminReply_PrefersAuthorRole(t *testing.T) {
	viewer := &models.User{Name: "Alice"}

	// Role field wins even when the names would say otherwise.
	assert.True(t, IsAdminReply(models.TimelineEntry{AddedBy: "Alice", AuthorRole: models.RoleAdmin}, viewer))
	assert.False(t, IsAdminReply(models.TimelineEntry{AddedBy: "Support", AuthorRole: models.RoleUser}, viewer))
}

func TestIsAdminReply_NameFallback(t *testing.T) {
	viewer := &models.User{Name: "Alice"}

	assert.True(t, IsAdminReply(models.TimelineEntry{AddedBy: "Support"}, viewer))
	assert.False(t, IsAdminReply(models.TimelineEntry{AddedBy: "Alice"}, viewer))
	assert.False(t, IsAdminReply(models.TimelineEntry{AddedBy: "Support"}, nil))
}

func TestSummarizeAdminReplies(t *testing.T) {
	viewer := &models.User{Name: "Alice"}
	timeline := []models.TimelineEntry{
		{AddedBy: "Alice", Note: "Reported the fault"},
		{AddedBy: "Support", Note: "Engineer assigned"},
		{AddedBy: "Support", Note: "Visit booked", AuthorRole: models.RoleAdmin},
	}

	summary := SummarizeAdminReplies(timeline, viewer)
	assert.True(t, summary.HasReplies)
	assert.Equal(t, 2, summary.Count)
	require.NotNil(t, summary.LastReply)
	assert.Equal(t, "Visit booked", summary.LastReply.Note)

	empty := SummarizeAdminReplies(nil, viewer)
	assert.False(t, empty.HasReplies)
	assert.Nil(t, empty.LastReply)
}
