package response

import "github.com/aksecuretech/portal-go/models"

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// TicketPage is the paged shape newer backends return from GET /tickets.
// Older backends return a bare array instead.
type TicketPage struct {
	Tickets []models.Ticket `json:"tickets"`
	HasMore bool            `json:"hasMore"`
}

type ServiceRequestPage struct {
	Requests []models.ServiceRequest `json:"requests"`
	HasMore  bool                    `json:"hasMore"`
}
