package entity

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

const DayLayout = "2006-01-02"

// Day is a calendar date without a time of day, encoded as YYYY-MM-DD.
type Day struct {
	time.Time
}

func Today() Day {
	return Day{now.BeginningOfDay()}
}

func NewDay(t time.Time) Day {
	return Day{now.With(t).BeginningOfDay()}
}

func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("entity.ParseDay: %w", err)
	}
	return Day{t}, nil
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DayLayout)
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DayLayout) + `"`), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		*d = Day{}
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	if len(s) > len(DayLayout) {
		s = s[:len(DayLayout)]
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
