package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for calendar days.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time component. It marshals as
// "YYYY-MM-DD" in JSON and stores as a DATE column. All values are
// normalized to midnight UTC so equality and range comparisons are
// free of timezone drift.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// AddDays returns the date shifted by the given number of days.
func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

// Within reports whether d falls in [start, end] inclusive. A zero
// start or end leaves that side of the range unbounded.
func (d Date) Within(start, end Date) bool {
	if !start.IsZero() && d.Time.Before(start.Time) {
		return false
	}
	if !end.IsZero() && d.Time.After(end.Time) {
		return false
	}
	return true
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
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

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Format(DateLayout), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	// sqlite may hand back the full timestamp form
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GormDataType tells gorm to migrate Date fields as DATE columns.
func (Date) GormDataType() string {
	return "date"
}
