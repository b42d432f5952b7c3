package workflows

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aksecuretech/portal-go/client"
	"github.com/aksecuretech/portal-go/dto"
	"github.com/aksecuretech/portal-go/forms"
	"github.com/aksecuretech/portal-go/models"
)

// MinSubmitDuration is the floor on how long a service request submission
// appears in progress, so a fast backend does not produce a jarring instant
// transition. Cosmetic only.
const MinSubmitDuration = 2 * time.Second

// ServiceRequestForm collects an installation/service request with a
// preferred visit window and up to five images.
type ServiceRequestForm struct {
	api *client.Client
	log zerolog.Logger

	Category          models.Category
	Description       string
	PreferredDate     string // YYYY-MM-DD
	PreferredTimeSlot string

	images      []forms.Attachment
	fieldErrors forms.FieldErrors
	errMsg      string
	submitting  bool

	now   func() time.Time
	sleep func(context.Context, time.Duration)
}

func NewServiceRequestForm(api *client.Client, log zerolog.Logger) *ServiceRequestForm {
	return &ServiceRequestForm{
		api: api,
		log: log,
		now: time.Now,
		sleep: func(ctx context.Context, d time.Duration) {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
			}
		},
	}
}

func (f *ServiceRequestForm) SelectImages(selected []forms.Attachment) error {
	kept, err := forms.LimitImages(selected)
	f.images = kept
	if err != nil {
		f.errMsg = err.Error()
		return err
	}
	f.errMsg = ""
	return nil
}

func (f *ServiceRequestForm) RemoveImage(i int) {
	f.images = forms.RemoveImage(f.images, i)
}

func (f *ServiceRequestForm) Images() []forms.Attachment     { return f.images }
func (f *ServiceRequestForm) FieldErrors() forms.FieldErrors { return f.fieldErrors }
func (f *ServiceRequestForm) ErrMsg() string                 { return f.errMsg }
func (f *ServiceRequestForm) Submitting() bool               { return f.submitting }

// Submit validates, posts the multipart payload and holds the in-progress
// state for at least MinSubmitDuration even when the network is faster.
func (f *ServiceRequestForm) Submit(ctx context.Context, onSuccess func()) error {
	input := dto.ServiceRequestInput{
		Category:          f.Category,
		Description:       strings.TrimSpace(f.Description),
		PreferredDate:     f.PreferredDate,
		PreferredTimeSlot: f.PreferredTimeSlot,
	}
	f.fieldErrors = forms.ValidateServiceRequest(input)
	if !f.fieldErrors.Valid() {
		return ErrValidation
	}

	preferredVisit, err := forms.CombineDateSlot(input.PreferredDate, input.PreferredTimeSlot)
	if err != nil {
		f.fieldErrors = forms.FieldErrors{"preferredVisit": "Preferred visit date and time slot are required."}
		return ErrValidation
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	fields := map[string]string{
		"category":         string(input.Category),
		"title":            string(input.Category) + " service request",
		"description":      input.Description,
		"preferredVisitAt": preferredVisit.UTC().Format(time.RFC3339),
	}

	started := f.now()
	submitErr := f.api.PostMultipart(ctx, "/service-requests", fields, attachmentFiles(f.images), nil)
	if remaining := MinSubmitDuration - f.now().Sub(started); remaining > 0 {
		f.sleep(ctx, remaining)
	}

	if submitErr != nil {
		f.errMsg = submitMessage(submitErr, "Failed to create service request. Please try again.")
		f.log.Warn().Err(submitErr).Msg("service request submission failed")
		return submitErr
	}

	f.reset()
	f.log.Info().Str("category", string(input.Category)).Msg("service request created")
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

func (f *ServiceRequestForm) reset() {
	f.Category = ""
	f.Description = ""
	f.PreferredDate = ""
	f.PreferredTimeSlot = ""
	f.images = nil
	f.fieldErrors = nil
	f.errMsg = ""
}
