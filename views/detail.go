package views

import "github.com/aksecuretech/portal-go/models"

// TimelineEntryView pairs a timeline entry with its admin flag and its own
// image lightbox.
type TimelineEntryView struct {
	Entry   models.TimelineEntry
	IsAdmin bool
	Gallery *Lightbox
}

// TicketDetail is the read-only admin view of one ticket: the entity, its
// owner's contact/location info, the image gallery and the reply timeline.
type TicketDetail struct {
	Ticket  models.Ticket
	Owner   *models.User
	MapsURL string
	Gallery *Lightbox
	Entries []TimelineEntryView
}

func NewTicketDetail(assetBase string, t models.Ticket, viewer *models.User) TicketDetail {
	return TicketDetail{
		Ticket:  t,
		Owner:   t.UserID.User,
		MapsURL: MapsURL(t.UserID.User),
		Gallery: NewLightbox(ResolveImageURLs(assetBase, t.Images)),
		Entries: buildEntries(assetBase, t.Timeline, viewer),
	}
}

// ServiceRequestDetail is the service request counterpart of TicketDetail.
type ServiceRequestDetail struct {
	Request models.ServiceRequest
	Owner   *models.User
	MapsURL string
	Gallery *Lightbox
	Entries []TimelineEntryView
}

func NewServiceRequestDetail(assetBase string, r models.ServiceRequest, viewer *models.User) ServiceRequestDetail {
	return ServiceRequestDetail{
		Request: r,
		Owner:   r.UserID.User,
		MapsURL: MapsURL(r.UserID.User),
		Gallery: NewLightbox(ResolveImageURLs(assetBase, r.Images)),
		Entries: buildEntries(assetBase, r.Timeline, viewer),
	}
}

func buildEntries(assetBase string, timeline []models.TimelineEntry, viewer *models.User) []TimelineEntryView {
	entries := make([]TimelineEntryView, 0, len(timeline))
	for _, entry := range timeline {
		entries = append(entries, TimelineEntryView{
			Entry:   entry,
			IsAdmin: IsAdminReply(entry, viewer),
			Gallery: NewLightbox(ResolveImageURLs(assetBase, entry.Images)),
		})
	}
	return entries
}
