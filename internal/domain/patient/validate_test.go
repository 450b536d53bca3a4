package patient

import (
	"strings"
	"testing"
	"time"
)

func validPatient() *Patient {
	return &Patient{
		Family: "TestNone",
		Given:  "Test",
		Dob:    NewDate(1966, time.December, 31),
	}
}

func hasViolation(violations []FieldViolation, field string) bool {
	for _, v := range violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func TestValidate_OK(t *testing.T) {
	p := validPatient()
	p.Gender = strptr("F")
	p.Address = strptr("1 Brookside St")
	p.Phone = strptr("100-222-3333")

	if violations := Validate(p); len(violations) != 0 {
		t.Errorf("expected no violations, got %v", violations)
	}
}

func TestValidate_OptionalFieldsAbsent(t *testing.T) {
	if violations := Validate(validPatient()); len(violations) != 0 {
		t.Errorf("expected no violations for absent optionals, got %v", violations)
	}
}

func TestValidate_RequiredNames(t *testing.T) {
	p := validPatient()
	p.Family = ""
	if !hasViolation(Validate(p), "family") {
		t.Error("expected violation for empty family")
	}

	p = validPatient()
	p.Given = ""
	if !hasViolation(Validate(p), "given") {
		t.Error("expected violation for empty given")
	}
}

func TestValidate_NameLengthBound(t *testing.T) {
	p := validPatient()
	p.Family = strings.Repeat("a", 51)
	if !hasViolation(Validate(p), "family") {
		t.Error("expected violation for 51-char family")
	}

	p = validPatient()
	p.Family = strings.Repeat("a", 50)
	if hasViolation(Validate(p), "family") {
		t.Error("expected 50 chars to pass")
	}
}

func TestValidate_DobRequired(t *testing.T) {
	p := validPatient()
	p.Dob = Date{}
	if !hasViolation(Validate(p), "dob") {
		t.Error("expected violation for zero dob")
	}
}

func TestValidate_Gender(t *testing.T) {
	p := validPatient()
	p.Gender = strptr("FM")
	if !hasViolation(Validate(p), "gender") {
		t.Error("expected violation for two-char gender")
	}

	p.Gender = strptr("F")
	if hasViolation(Validate(p), "gender") {
		t.Error("expected single-char gender to pass")
	}
}

func TestValidate_Address(t *testing.T) {
	p := validPatient()
	p.Address = strptr(strings.Repeat("a", 51))
	if !hasViolation(Validate(p), "address") {
		t.Error("expected violation for 51-char address")
	}
}

func TestValidate_Phone(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"100-222-3333", true},
		{"", true}, // empty phone is allowed
		{"1002223333", false},
		{"100-222-333", false},
		{"100-222-33334", false},
		{"abc-def-ghij", false},
		{"100 222 3333", false},
	}

	for _, tc := range cases {
		p := validPatient()
		p.Phone = strptr(tc.phone)
		got := hasViolation(Validate(p), "phone")
		if tc.valid && got {
			t.Errorf("phone %q: expected valid", tc.phone)
		}
		if !tc.valid && !got {
			t.Errorf("phone %q: expected violation", tc.phone)
		}
	}
}
