// Package validate holds the field rules for create inputs. Validation always
// runs before persistence; a failing input never reaches storage.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"travelnest/internal/domain"
)

// FieldError reports the first field that failed validation along with a
// human-readable reason. Field is a dot-separated path (flat fields today).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reDigit = regexp.MustCompile(`[0-9]`)
)

const minPhoneDigits = 10

// PackageInput checks a package-create input. Returns nil when valid,
// otherwise the first failing field in declaration order.
func PackageInput(in domain.PackageInput) *FieldError {
	if strings.TrimSpace(in.Title) == "" {
		return &FieldError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(in.Description) == "" {
		return &FieldError{Field: "description", Message: "description is required"}
	}
	if in.Price < 0 {
		return &FieldError{Field: "price", Message: "price must be zero or greater"}
	}
	if strings.TrimSpace(in.Image) == "" {
		return &FieldError{Field: "image", Message: "image is required"}
	}
	if !domain.ValidCategory(in.Category) {
		return &FieldError{Field: "category", Message: "category must be either domestic or international"}
	}
	if strings.TrimSpace(in.Location) == "" {
		return &FieldError{Field: "location", Message: "location is required"}
	}
	return nil
}

// InquiryInput checks an inquiry-create input. Returns nil when valid,
// otherwise the first failing field in declaration order.
func InquiryInput(in domain.InquiryInput) *FieldError {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return &FieldError{Field: "name", Message: "name must be at least 2 characters"}
	}
	if !reEmail.MatchString(strings.TrimSpace(in.Email)) {
		return &FieldError{Field: "email", Message: "email must be a valid email address"}
	}
	if digitCount(in.Phone) < minPhoneDigits {
		return &FieldError{Field: "phone", Message: "phone must contain at least 10 digits"}
	}
	return nil
}

// digitCount counts decimal digits, ignoring separators like spaces,
// dashes and parentheses.
func digitCount(s string) int {
	return len(reDigit.FindAllString(s, -1))
}
