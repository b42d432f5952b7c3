package workflows

import (
	"context"
	"strings"
	"time"

	"github.com/aksecuretech/portal-go/forms"
)

// ReplyFunc performs the actual reply call; the modal itself never talks to
// the network. A nil return is the one and only success signal — the old
// "anything not explicitly false counts as success" contract does not
// survive a typed signature.
type ReplyFunc func(ctx context.Context, message string, scheduledAt time.Time) error

// ReplyForm is the admin reply modal state: a message plus a scheduled
// visit, both required.
type ReplyForm struct {
	Message string
	Date    string // YYYY-MM-DD
	Slot    string

	open        bool
	updating    bool
	fieldErrors forms.FieldErrors

	now func() time.Time
}

func NewReplyForm() *ReplyForm {
	return &ReplyForm{now: time.Now}
}

func (f *ReplyForm) Open()          { f.open = true }
func (f *ReplyForm) IsOpen() bool   { return f.open }
func (f *ReplyForm) Updating() bool { return f.updating }

func (f *ReplyForm) FieldErrors() forms.FieldErrors { return f.fieldErrors }

// Close dismisses the modal and clears its state, unless a submission is in
// flight.
func (f *ReplyForm) Close() {
	if f.updating {
		return
	}
	f.clear()
	f.open = false
}

// Submit validates and delegates to onReply. Only a nil error clears and
// closes the modal; any failure keeps the input for correction.
func (f *ReplyForm) Submit(ctx context.Context, onReply ReplyFunc) error {
	errs, scheduledAt := forms.ValidateReply(f.Message, f.Date, f.Slot, f.now())
	f.fieldErrors = errs
	if !errs.Valid() {
		return ErrValidation
	}

	f.updating = true
	err := onReply(ctx, strings.TrimSpace(f.Message), scheduledAt)
	f.updating = false
	if err != nil {
		return err
	}

	f.clear()
	f.open = false
	return nil
}

func (f *ReplyForm) clear() {
	f.Message = ""
	f.Date = ""
	f.Slot = ""
	f.fieldErrors = nil
}
