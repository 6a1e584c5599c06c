package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Date is a calendar date that decodes from YAML date scalars or
// "YYYY-MM-DD" strings and serializes to JSON as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) *Date {
	return &Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalYAML accepts YAML timestamp scalars and plain date
// strings.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var t time.Time
	if err := value.Decode(&t); err == nil {
		d.Time = t
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid date value")
	}
	return d.parse(s)
}

// MarshalJSON renders the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON parses a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	return d.parse(s)
}

func (d *Date) parse(s string) error {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	d.Time = t
	return nil
}

// String renders the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Format(dateLayout)
}

// Devised records whether a show was devised, optionally naming who
// devised it. Source documents supply either a boolean or a free-text
// string.
type Devised struct {
	Flag bool
	By   string
}

// IsSet reports whether the show is devised at all.
func (d Devised) IsSet() bool {
	return d.Flag || d.By != ""
}

// UnmarshalYAML accepts booleans, boolean-looking strings, and
// free-text deviser names.
func (d *Devised) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		*d = Devised{Flag: b}
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("devised must be a boolean or a string")
	}
	d.assign(s)
	return nil
}

// MarshalJSON preserves the source shape: a string when a deviser is
// named, a boolean otherwise.
func (d Devised) MarshalJSON() ([]byte, error) {
	if d.By != "" {
		return json.Marshal(d.By)
	}
	return json.Marshal(d.Flag)
}

// UnmarshalJSON mirrors MarshalJSON.
func (d *Devised) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*d = Devised{Flag: b}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("devised must be a boolean or a string")
	}
	d.assign(s)
	return nil
}

func (d *Devised) assign(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		*d = Devised{Flag: true}
	case "false", "":
		*d = Devised{}
	default:
		*d = Devised{Flag: true, By: strings.TrimSpace(s)}
	}
}
