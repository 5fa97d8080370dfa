package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateRegisterInput(input RegisterInput) []FieldError {
	var errors []FieldError

	if strings.TrimSpace(input.Nom) == "" {
		errors = append(errors, FieldError{"nom", "is required"})
	} else if len(input.Nom) > 200 {
		errors = append(errors, FieldError{"nom", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Prenom) == "" {
		errors = append(errors, FieldError{"prenom", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, FieldError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, FieldError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Telephone) == "" {
		errors = append(errors, FieldError{"telephone", "is required"})
	} else if !isValidPhoneNumber(input.Telephone) {
		errors = append(errors, FieldError{"telephone", "must be a valid phone number"})
	}

	return errors
}

func ValidateCallResultInput(input RecordCallInput) []FieldError {
	var errors []FieldError

	if strings.TrimSpace(input.ProspectID) == "" {
		errors = append(errors, FieldError{"prospect_id", "is required"})
	}

	// Ancillary fields (rappel/rdv details) are caller-supplied pass-through;
	// only the result enum itself is checked.
	if !input.Result.Valid() {
		errors = append(errors, FieldError{"result", "must be refus, a_rappeler, pas_de_reponse or rdv_pris"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 8 && len(cleaned) <= 15
}

func fieldErrorMessage(errs []FieldError) string {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return strings.TrimSuffix(msg, ", ")
}
