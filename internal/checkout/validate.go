package checkout

import (
	"regexp"
	"strings"

	"stylehub/internal/model"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// ValidateShipping checks the shipping form against the required-field
// and format rules. It is pure; an empty result means the input is
// valid. Each failing field gets exactly one message.
func ValidateShipping(info model.ShippingInfo) model.FieldErrors {
	errs := model.FieldErrors{}

	if strings.TrimSpace(info.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}

	if strings.TrimSpace(info.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(info.Email) {
		errs["email"] = "Invalid email format"
	}

	if strings.TrimSpace(info.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if len(nonDigits.ReplaceAllString(info.Phone, "")) != 10 {
		errs["phone"] = "Invalid phone number"
	}

	if strings.TrimSpace(info.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(info.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(info.State) == "" {
		errs["state"] = "State is required"
	}
	if strings.TrimSpace(info.ZipCode) == "" {
		errs["zipCode"] = "ZIP code is required"
	}

	return errs
}

// ValidationError reports a failed shipping form submission together
// with its per-field messages.
type ValidationError struct {
	Fields model.FieldErrors
}

func (e *ValidationError) Error() string {
	return "Please fill in all required fields"
}
