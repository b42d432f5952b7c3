package views

import "github.com/aksecuretech/portal-go/models"

// IsAdminReply reports whether a timeline entry was written by an admin.
// Entries from newer backends carry an explicit author role; older records
// only have the author display name, where inequality with the viewing
// user's own name is the legacy inference (a viewer sharing an admin's
// display name defeats it — which is why the role field exists).
func IsAdminReply(entry models.TimelineEntry, viewer *models.User) bool {
	if entry.AuthorRole != "" {
		return entry.AuthorRole == models.RoleAdmin
	}
	if viewer == nil {
		return false
	}
	return entry.AddedBy != viewer.Name
}

// ReplySummary is the admin-reply badge data for a list row.
type ReplySummary struct {
	Count      int
	HasReplies bool
	LastReply  *models.TimelineEntry
}

// SummarizeAdminReplies counts the admin entries in a timeline from the
// viewer's perspective.
func SummarizeAdminReplies(timeline []models.TimelineEntry, viewer *models.User) ReplySummary {
	var summary ReplySummary
	for i := range timeline {
		if IsAdminReply(timeline[i], viewer) {
			summary.Count++
			summary.LastReply = &timeline[i]
		}
	}
	summary.HasReplies = summary.Count > 0
	return summary
}
