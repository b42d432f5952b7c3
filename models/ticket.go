package models

import "time"

type Category string

const (
	CategoryCCTV            Category = "CCTV"
	CategoryFireAlarm       Category = "Fire Alarm"
	CategorySecurityAlarm   Category = "Security Alarm"
	CategoryElectrical      Category = "Electrical"
	CategoryPlumbing        Category = "Plumbing"
	CategoryAirConditioning Category = "Air Conditioning"
)

func Categories() []Category {
	return []Category{
		CategoryCCTV,
		CategoryFireAlarm,
		CategorySecurityAlarm,
		CategoryElectrical,
		CategoryPlumbing,
		CategoryAirConditioning,
	}
}

func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "New"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusClosed     TicketStatus = "Closed"

	// Legacy status emitted by older backend records, equivalent to New.
	TicketStatusOpen TicketStatus = "Open"
)

// Normalize maps the legacy Open status onto New.
func (s TicketStatus) Normalize() TicketStatus {
	if s == TicketStatusOpen {
		return TicketStatusNew
	}
	return s
}

type TimelineEntry struct {
	AddedBy string    `json:"addedBy"`
	Note    string    `json:"note"`
	Images  []string  `json:"images,omitempty"`
	AddedAt time.Time `json:"addedAt"`
	// AuthorRole is only set by backends that record who wrote the entry.
	// Older records omit it and the author kind has to be inferred.
	AuthorRole Role `json:"authorRole,omitempty"`
}

type Ticket struct {
	ID               string          `json:"_id"`
	TicketID         string          `json:"ticketId"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Category         Category        `json:"category"`
	Status           TicketStatus    `json:"status"`
	UserID           UserRef         `json:"userId"`
	Images           []string        `json:"images,omitempty"`
	Timeline         []TimelineEntry `json:"timeline,omitempty"`
	PreferredVisitAt *time.Time      `json:"preferredVisitAt,omitempty"`
	AssignedVisitAt  *time.Time      `json:"assignedVisitAt,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func (t Ticket) ItemID() string { return t.ID }

func (t Ticket) OwnerID() string { return t.UserID.ID }
