package models

import "time"

type ServiceRequestStatus string

const (
	ServiceRequestStatusNew        ServiceRequestStatus = "New"
	ServiceRequestStatusInProgress ServiceRequestStatus = "In Progress"
	ServiceRequestStatusCompleted  ServiceRequestStatus = "Completed"
)

type ServiceRequest struct {
	ID               string               `json:"_id"`
	RequestID        string               `json:"requestId"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	Category         Category             `json:"category"`
	Status           ServiceRequestStatus `json:"status"`
	UserID           UserRef              `json:"userId"`
	Images           []string             `json:"images,omitempty"`
	Timeline         []TimelineEntry      `json:"timeline,omitempty"`
	PreferredVisitAt *time.Time           `json:"preferredVisitAt,omitempty"`
	AssignedVisitAt  *time.Time           `json:"assignedVisitAt,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

func (r ServiceRequest) ItemID() string { return r.ID }

func (r ServiceRequest) OwnerID() string { return r.UserID.ID }
