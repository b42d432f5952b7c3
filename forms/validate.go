package forms

import (
	"regexp"
	"strings"
	"time"

	"github.com/aksecuretech/portal-go/dto"
	"github.com/aksecuretech/portal-go/models"
)

// Field errors are keyed by form field name; an empty map means valid.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool { return len(e) == 0 }

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
)

// ValidateRegister checks the registration form field by field. Nothing is
// submitted while any error remains.
func ValidateRegister(input dto.RegisterInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		errs["companyName"] = "Company name is required"
	}
	if strings.TrimSpace(input.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(input.Phone) {
		errs["phone"] = "Please enter a valid phone number"
	}
	if strings.TrimSpace(input.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
		errs["email"] = "Please enter a valid email address"
	}
	if input.Password == "" {
		errs["password"] = "Password is required"
	} else if len(input.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters long"
	}
	if input.ConfirmPassword == "" {
		errs["confirmPassword"] = "Please confirm your password"
	} else if input.Password != input.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	if strings.TrimSpace(input.Address) == "" {
		errs["address"] = "Company address is required"
	}

	return errs
}

// ValidateTicket checks a ticket creation form.
func ValidateTicket(input dto.TicketInput) FieldErrors {
	errs := FieldErrors{}
	if input.Category == "" {
		errs["category"] = "Category is required"
	} else if !models.ValidCategory(input.Category) {
		errs["category"] = "Unknown category"
	}
	if strings.TrimSpace(input.Description) == "" {
		errs["description"] = "Description is required"
	}
	return errs
}

// ValidateServiceRequest checks a service request form, including the
// preferred visit date and time slot.
func ValidateServiceRequest(input dto.ServiceRequestInput) FieldErrors {
	errs := FieldErrors{}
	if input.Category == "" {
		errs["category"] = "Category and description are required."
	} else if !models.ValidCategory(input.Category) {
		errs["category"] = "Unknown category"
	}
	if strings.TrimSpace(input.Description) == "" {
		errs["description"] = "Category and description are required."
	}
	if input.PreferredDate == "" || input.PreferredTimeSlot == "" {
		errs["preferredVisit"] = "Preferred visit date and time slot are required."
	} else if _, err := CombineDateSlot(input.PreferredDate, input.PreferredTimeSlot); err != nil {
		errs["preferredVisit"] = "Preferred visit date and time slot are required."
	}
	return errs
}

// ValidateReply checks an admin reply: a non-trivial message plus a scheduled
// visit that is not in the past. Errors are scoped to "message" or
// "schedule" so the form can highlight the right section.
func ValidateReply(message, date, slot string, now time.Time) (FieldErrors, time.Time) {
	errs := FieldErrors{}
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		errs["message"] = "Reply message is required"
	} else if len(trimmed) < 3 {
		errs["message"] = "Reply message must be at least 3 characters long"
	}

	if date == "" || slot == "" {
		errs["schedule"] = "Please select both scheduling date and time slot"
		return errs, time.Time{}
	}
	combined, err := CombineDateSlot(date, slot)
	if err != nil || combined.Before(now) {
		errs["schedule"] = "Scheduling time cannot be in the past"
		return errs, time.Time{}
	}
	return errs, combined
}
