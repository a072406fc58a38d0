package dto

import (
	"fmt"
	"strings"
	"time"
)

// Date accepts both RFC3339 timestamps and bare YYYY-MM-DD values on input;
// the browser client submits date-only deadlines. Empty and null inputs
// leave the Date zero, which callers treat as "no deadline".
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		d.Time = t
		return nil
	}

	return fmt.Errorf("invalid date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}
