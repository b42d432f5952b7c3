package session

import (
	"strings"

	"github.com/aksecuretech/portal-go/dto"
	"github.com/aksecuretech/portal-go/forms"
)

// MapRegisterError maps a server-side registration failure back onto form
// fields by matching substrings of the message. The backend does not return
// structured error codes, so this string contract is kept in one place.
func MapRegisterError(message string, input dto.RegisterInput) forms.FieldErrors {
	errs := forms.FieldErrors{}
	lower := strings.ToLower(message)

	duplicate := strings.Contains(lower, "exists") || strings.Contains(lower, "already")
	if strings.Contains(lower, "email") && duplicate {
		errs["email"] = message
	}
	if strings.Contains(lower, "phone") && duplicate {
		errs["phone"] = message
	}
	if strings.Contains(lower, "required fields") {
		if strings.TrimSpace(input.Name) == "" {
			errs["name"] = "Name is required"
		}
		if strings.TrimSpace(input.CompanyName) == "" {
			errs["companyName"] = "Company name is required"
		}
		if strings.TrimSpace(input.Phone) == "" {
			errs["phone"] = "Phone number is required"
		}
		if strings.TrimSpace(input.Email) == "" {
			errs["email"] = "Email is required"
		}
		if input.Password == "" {
			errs["password"] = "Password is required"
		}
		if strings.TrimSpace(input.Address) == "" {
			errs["address"] = "Company address is required"
		}
	}
	return errs
}
