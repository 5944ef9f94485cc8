package api

import (
	"errors"  // Sentinel errors
	"strconv" // JSON string unquoting
	"time"    // Calendar dates

	"wallet_ledger/internal/domain" // Day truncation
)

// DateLayout is dd-MM-yyyy
const DateLayout = "02-01-2006"

// ErrDateFormat is returned for dates not written as dd-MM-yyyy
var ErrDateFormat = errors.New("dates must use the dd-MM-yyyy format")

// Date is a calendar day exchanged as "dd-MM-yyyy"
type Date struct {
	time.Time
}

// ParseDate reads a dd-MM-yyyy string as midnight UTC
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Date{}, ErrDateFormat
	}
	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(domain.Day(d.Time).Format(DateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return ErrDateFormat
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
