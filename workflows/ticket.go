package workflows

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aksecuretech/portal-go/client"
	"github.com/aksecuretech/portal-go/dto"
	"github.com/aksecuretech/portal-go/forms"
	"github.com/aksecuretech/portal-go/models"
)

// ErrValidation means local validation blocked the submission; nothing was
// sent. Inspect FieldErrors on the form for the per-field messages.
var ErrValidation = errors.New("validation failed")

// TicketForm collects a ticket submission. Forms are owned by a single view
// and are not safe for concurrent use; all durable state lives server-side.
type TicketForm struct {
	api *client.Client
	log zerolog.Logger

	Category    models.Category
	Title       string
	Description string

	images      []forms.Attachment
	fieldErrors forms.FieldErrors
	errMsg      string
	submitting  bool
}

func NewTicketForm(api *client.Client, log zerolog.Logger) *TicketForm {
	return &TicketForm{api: api, log: log}
}

// SelectImages replaces the attached set, truncating past the cap. The
// returned error is the user-facing cap message, nil when nothing was
// dropped.
func (f *TicketForm) SelectImages(selected []forms.Attachment) error {
	kept, err := forms.LimitImages(selected)
	f.images = kept
	if err != nil {
		f.errMsg = err.Error()
		return err
	}
	f.errMsg = ""
	return nil
}

func (f *TicketForm) RemoveImage(i int) {
	f.images = forms.RemoveImage(f.images, i)
}

func (f *TicketForm) Images() []forms.Attachment     { return f.images }
func (f *TicketForm) FieldErrors() forms.FieldErrors { return f.fieldErrors }
func (f *TicketForm) ErrMsg() string                 { return f.errMsg }
func (f *TicketForm) Submitting() bool               { return f.submitting }

// Submit validates locally, then posts the multipart payload. On success the
// form resets and onSuccess fires; on failure input is kept for correction.
func (f *TicketForm) Submit(ctx context.Context, onSuccess func()) error {
	input := dto.TicketInput{
		Category:    f.Category,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
	}
	f.fieldErrors = forms.ValidateTicket(input)
	if !f.fieldErrors.Valid() {
		return ErrValidation
	}
	if input.Title == "" {
		input.Title = string(input.Category) + " query"
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	fields := map[string]string{
		"category":    string(input.Category),
		"title":       input.Title,
		"description": input.Description,
	}
	if err := f.api.PostMultipart(ctx, "/tickets", fields, attachmentFiles(f.images), nil); err != nil {
		f.errMsg = submitMessage(err, "Failed to create ticket. Please try again.")
		f.log.Warn().Err(err).Msg("ticket submission failed")
		return err
	}

	f.reset()
	f.log.Info().Str("category", string(input.Category)).Msg("ticket created")
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

func (f *TicketForm) reset() {
	f.Category = ""
	f.Title = ""
	f.Description = ""
	f.images = nil
	f.fieldErrors = nil
	f.errMsg = ""
}

func attachmentFiles(images []forms.Attachment) []client.File {
	files := make([]client.File, 0, len(images))
	for _, img := range images {
		files = append(files, client.File{
			FieldName:   "images",
			FileName:    img.Name,
			ContentType: img.ContentType,
			Data:        img.Data,
		})
	}
	return files
}

func submitMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != client.FallbackMessage {
		return apiErr.Message
	}
	return fallback
}
