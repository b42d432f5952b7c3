package workflows

import (
	"context"
	"time"

	"github.com/aksecuretech/portal-go/dto"
	"github.com/aksecuretech/portal-go/forms"
	"github.com/aksecuretech/portal-go/models"
)

// UpdateFunc applies a status/visit change; the form's responsibility ends
// at invoking it and surfacing its rejection.
type UpdateFunc func(ctx context.Context, input dto.StatusUpdateInput) error

// StatusUpdateForm is the thin admin form that picks a status and an
// assigned visit time for a ticket or service request.
type StatusUpdateForm struct {
	Status        string
	VisitDateTime string // datetime-local, 2006-01-02T15:04

	statuses    []string
	updating    bool
	fieldErrors forms.FieldErrors
}

// NewTicketUpdateForm offers the ticket status set.
func NewTicketUpdateForm() *StatusUpdateForm {
	return &StatusUpdateForm{statuses: []string{
		string(models.TicketStatusNew),
		string(models.TicketStatusInProgress),
		string(models.TicketStatusClosed),
	}}
}

// NewServiceRequestUpdateForm offers the service request status set.
func NewServiceRequestUpdateForm() *StatusUpdateForm {
	return &StatusUpdateForm{statuses: []string{
		string(models.ServiceRequestStatusNew),
		string(models.ServiceRequestStatusInProgress),
		string(models.ServiceRequestStatusCompleted),
	}}
}

func (f *StatusUpdateForm) StatusOptions() []string        { return f.statuses }
func (f *StatusUpdateForm) Updating() bool                 { return f.updating }
func (f *StatusUpdateForm) FieldErrors() forms.FieldErrors { return f.fieldErrors }

func (f *StatusUpdateForm) validate() (dto.StatusUpdateInput, forms.FieldErrors) {
	errs := forms.FieldErrors{}
	valid := false
	for _, s := range f.statuses {
		if f.Status == s {
			valid = true
			break
		}
	}
	if !valid {
		errs["status"] = "Please select a valid status"
	}

	input := dto.StatusUpdateInput{Status: f.Status}
	if f.VisitDateTime != "" {
		t, err := time.ParseInLocation("2006-01-02T15:04", f.VisitDateTime, time.Local)
		if err != nil {
			errs["visitDateTime"] = "Please enter a valid visit time"
		} else {
			input.AssignedVisitAt = &t
		}
	}
	return input, errs
}

// Submit validates and delegates to onUpdate, surfacing its rejection under
// the "update" key.
func (f *StatusUpdateForm) Submit(ctx context.Context, onUpdate UpdateFunc) error {
	input, errs := f.validate()
	f.fieldErrors = errs
	if !errs.Valid() {
		return ErrValidation
	}

	f.updating = true
	err := onUpdate(ctx, input)
	f.updating = false
	if err != nil {
		f.fieldErrors = forms.FieldErrors{"update": submitMessage(err, "Failed to update. Please try again.")}
		return err
	}
	return nil
}
