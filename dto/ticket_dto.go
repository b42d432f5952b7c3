package dto

import (
	"time"

	"github.com/aksecuretech/portal-go/models"
)

type TicketInput struct {
	Category    models.Category `json:"category"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
}

type ServiceRequestInput struct {
	Category          models.Category `json:"category"`
	Description       string          `json:"description"`
	PreferredDate     string          `json:"-"` // YYYY-MM-DD from the date picker
	PreferredTimeSlot string          `json:"-"` // one of the fixed slots
}

type ReplyInput struct {
	Message     string    `json:"message"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

type StatusUpdateInput struct {
	Status          string     `json:"status"`
	AssignedVisitAt *time.Time `json:"assignedVisitAt,omitempty"`
}
