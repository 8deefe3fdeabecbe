package din

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Text is a string cell. Values are stored space-padded in some exports, so
// surrounding whitespace is stripped on read.
type Text string

func (t *Text) UnmarshalCSV(s string) error {
	*t = Text(strings.TrimSpace(s))
	return nil
}

func (t Text) MarshalCSV() (string, error) {
	return string(t), nil
}

// Int is a nullable integer cell; an empty cell leaves Valid false.
type Int struct {
	Val   int
	Valid bool
}

func (i *Int) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*i = Int{}
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", s, err)
	}
	*i = Int{Val: v, Valid: true}
	return nil
}

func (i Int) MarshalCSV() (string, error) {
	if !i.Valid {
		return "", nil
	}
	return strconv.Itoa(i.Val), nil
}

// Ptr returns the value as a pointer, nil when the cell was empty or -1.
// -1 is the DINO convention for "no value" in most integer columns.
func (i Int) Ptr() *int {
	if !i.Valid || i.Val == -1 {
		return nil
	}
	v := i.Val
	return &v
}

// Date is a calendar date cell in yyyymmdd form; an empty cell decodes to the
// zero time.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if len(s) != 8 {
		return fmt.Errorf("invalid date %q: want yyyymmdd", s)
	}
	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	month, err := strconv.Atoi(s[4:6])
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	day, err := strconv.Atoi(s[6:8])
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return nil
}

func (d Date) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", nil
	}
	return fmt.Sprintf("%04d%02d%02d", d.Year(), int(d.Month()), d.Day()), nil
}

// Seconds is a duration cell given as a whole number of seconds.
type Seconds struct {
	Duration time.Duration
	Valid    bool
}

func (sec *Seconds) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*sec = Seconds{}
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid second count %q: %w", s, err)
	}
	*sec = Seconds{Duration: time.Duration(v) * time.Second, Valid: true}
	return nil
}

func (sec Seconds) MarshalCSV() (string, error) {
	if !sec.Valid {
		return "", nil
	}
	return strconv.Itoa(int(sec.Duration / time.Second)), nil
}

// Ptr returns the duration as a pointer, nil when the cell was empty or -1
// seconds (the "passes through" marker in timing columns).
func (sec Seconds) Ptr() *time.Duration {
	if !sec.Valid || sec.Duration == -time.Second {
		return nil
	}
	d := sec.Duration
	return &d
}

// Coord is a coordinate cell. Coordinates are kept as strings to preserve the
// source formatting; "-1" marks an absent coordinate.
type Coord string

func (c *Coord) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "-1" {
		s = ""
	}
	*c = Coord(s)
	return nil
}

func (c Coord) MarshalCSV() (string, error) {
	return string(c), nil
}

// Bool is a nullable boolean cell stored as 0/1.
type Bool struct {
	Val   bool
	Valid bool
}

func (b *Bool) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*b = Bool{}
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %q: %w", s, err)
	}
	if v == -1 {
		*b = Bool{}
		return nil
	}
	*b = Bool{Val: v != 0, Valid: true}
	return nil
}

func (b Bool) MarshalCSV() (string, error) {
	if !b.Valid {
		return "", nil
	}
	if b.Val {
		return "1", nil
	}
	return "0", nil
}

// Ptr returns the value as a pointer, nil when the cell was empty.
func (b Bool) Ptr() *bool {
	if !b.Valid {
		return nil
	}
	v := b.Val
	return &v
}
