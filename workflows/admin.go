package workflows

import (
	"context"
	"time"

	"github.com/aksecuretech/portal-go/client"
	"github.com/aksecuretech/portal-go/dto"
	"github.com/aksecuretech/portal-go/models"
)

// Admin-side entity operations. These are the calls the detail panels hand
// to their forms as callbacks; each returns the updated entity.

func ReplyToTicket(ctx context.Context, api *client.Client, id string, input dto.ReplyInput) (models.Ticket, error) {
	var updated models.Ticket
	err := api.Post(ctx, "/tickets/"+id+"/reply", input, &updated)
	return updated, err
}

func ReplyToServiceRequest(ctx context.Context, api *client.Client, id string, input dto.ReplyInput) (models.ServiceRequest, error) {
	var updated models.ServiceRequest
	err := api.Post(ctx, "/service-requests/"+id+"/reply", input, &updated)
	return updated, err
}

func UpdateTicket(ctx context.Context, api *client.Client, id string, input dto.StatusUpdateInput) (models.Ticket, error) {
	var updated models.Ticket
	err := api.Put(ctx, "/tickets/"+id, input, &updated)
	return updated, err
}

func UpdateServiceRequest(ctx context.Context, api *client.Client, id string, input dto.StatusUpdateInput) (models.ServiceRequest, error) {
	var updated models.ServiceRequest
	err := api.Put(ctx, "/service-requests/"+id, input, &updated)
	return updated, err
}

// TicketReplyFunc adapts ReplyToTicket to the reply modal's callback shape.
func TicketReplyFunc(api *client.Client, id string) ReplyFunc {
	return func(ctx context.Context, message string, scheduledAt time.Time) error {
		_, err := ReplyToTicket(ctx, api, id, dto.ReplyInput{Message: message, ScheduledAt: scheduledAt})
		return err
	}
}

// ServiceRequestReplyFunc adapts ReplyToServiceRequest likewise.
func ServiceRequestReplyFunc(api *client.Client, id string) ReplyFunc {
	return func(ctx context.Context, message string, scheduledAt time.Time) error {
		_, err := ReplyToServiceRequest(ctx, api, id, dto.ReplyInput{Message: message, ScheduledAt: scheduledAt})
		return err
	}
}
