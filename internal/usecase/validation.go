package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// emailPattern requires a local part, an @, and a domain containing at least
// one dot. Anything fancier belongs to the mail server that eventually
// contacts the lead.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateSubmitDemoRequestInput checks the required demo-request fields.
// Optional fields pass through untouched; the form already constrains the
// enumerated ones and storage does not care.
func ValidateSubmitDemoRequestInput(input SubmitDemoRequestInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"firstName", "is required"})
	}

	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"lastName", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

// ValidateSubscribeNewsletterInput checks the newsletter signup payload.
func ValidateSubscribeNewsletterInput(input SubscribeNewsletterInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

// ValidateCreateDentistInput checks the practice profile payload.
func ValidateCreateDentistInput(input CreateDentistInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.PracticeName) == "" {
		errors = append(errors, ValidationError{"practiceName", "is required"})
	}

	return errors
}
