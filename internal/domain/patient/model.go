package patient

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component, marshalled as yyyy-MM-dd.
// Dates of birth are stored and compared at day precision only.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a yyyy-MM-dd string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// DateOf truncates t to day precision in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Patient maps to the patients table. ID is the store-assigned surrogate
// identifier; (Family, Given, Dob) is the natural key used for duplicate
// detection.
type Patient struct {
	ID      int     `db:"patient_id" json:"id"`
	Family  string  `db:"family" json:"family"`
	Given   string  `db:"given" json:"given"`
	Dob     Date    `db:"date_of_birth" json:"dob"`
	Gender  *string `db:"gender" json:"gender,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
}
