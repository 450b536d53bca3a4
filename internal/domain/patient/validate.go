package patient

import (
	"regexp"
	"unicode/utf8"
)

var phonePattern = regexp.MustCompile(`^([0-9]{3}-[0-9]{3}-[0-9]{4})?$`)

// FieldViolation describes a single invalid request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the constraints inbound patients must satisfy before they
// reach the service: family/given non-empty and at most 50 characters,
// gender at most one character, address at most 50 characters, phone either
// empty or DDD-DDD-DDDD. The service assumes these already hold and does not
// re-check them.
func Validate(p *Patient) []FieldViolation {
	var violations []FieldViolation

	if p.Family == "" {
		violations = append(violations, FieldViolation{Field: "family", Message: "family name is mandatory"})
	} else if utf8.RuneCountInString(p.Family) > 50 {
		violations = append(violations, FieldViolation{Field: "family", Message: "family name must not exceed 50 characters"})
	}

	if p.Given == "" {
		violations = append(violations, FieldViolation{Field: "given", Message: "given name is mandatory"})
	} else if utf8.RuneCountInString(p.Given) > 50 {
		violations = append(violations, FieldViolation{Field: "given", Message: "given name must not exceed 50 characters"})
	}

	if p.Dob.IsZero() {
		violations = append(violations, FieldViolation{Field: "dob", Message: "date of birth is mandatory"})
	}

	if p.Gender != nil && utf8.RuneCountInString(*p.Gender) > 1 {
		violations = append(violations, FieldViolation{Field: "gender", Message: "gender must be a single character"})
	}

	if p.Address != nil && utf8.RuneCountInString(*p.Address) > 50 {
		violations = append(violations, FieldViolation{Field: "address", Message: "address must not exceed 50 characters"})
	}

	if p.Phone != nil && !phonePattern.MatchString(*p.Phone) {
		violations = append(violations, FieldViolation{Field: "phone", Message: "phone must match the format 111-222-3333"})
	}

	return violations
}
