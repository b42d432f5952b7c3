package views

import "github.com/aksecuretech/portal-go/models"

type TicketStats struct {
	Total      int
	New        int
	InProgress int
	Closed     int
}

func ComputeTicketStats(tickets []models.Ticket) TicketStats {
	stats := TicketStats{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status.Normalize() {
		case models.TicketStatusNew:
			stats.New++
		case models.TicketStatusInProgress:
			stats.InProgress++
		case models.TicketStatusClosed:
			stats.Closed++
		}
	}
	return stats
}

type ServiceRequestStats struct {
	Total      int
	New        int
	InProgress int
	Completed  int
}

func ComputeServiceRequestStats(requests []models.ServiceRequest) ServiceRequestStats {
	stats := ServiceRequestStats{Total: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case models.ServiceRequestStatusNew:
			stats.New++
		case models.ServiceRequestStatusInProgress:
			stats.InProgress++
		case models.ServiceRequestStatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
