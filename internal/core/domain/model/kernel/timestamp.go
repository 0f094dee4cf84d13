package kernel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"commerce/internal/pkg/errs"

	"github.com/jinzhu/now"
)

// Zone-less ISO datetimes, as sent by <input type="datetime-local">, are
// read as UTC.
var localISOLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// Epoch milliseconds need at least this many digits; shorter digit runs are
// years ("2024") or compact dates ("20240110").
const minEpochMillisDigits = 10

var yearPattern = regexp.MustCompile(`\d{4}`)

// ParseTimestamp normalizes a client supplied date into a UTC time.
// Accepted forms: RFC 3339 (with or without fractional seconds), ISO datetimes
// without a zone, compact YYYYMMDD dates, anything github.com/jinzhu/now
// understands that carries a year ("2006-01-02", "2006-01-02 15:04", ...),
// and epoch milliseconds written as a decimal string.
// Time-only input such as "12:30" is rejected instead of being read as today.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError("timestamp")
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range localISOLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}

	if isDigits(raw) {
		return parseDigits(raw)
	}

	if !yearPattern.MatchString(raw) {
		return time.Time{}, invalidTimestamp(raw)
	}
	t, err := now.ParseInLocation(time.UTC, raw)
	if err != nil {
		return time.Time{}, invalidTimestamp(raw)
	}
	return t.UTC(), nil
}

func parseDigits(raw string) (time.Time, error) {
	switch {
	case len(raw) >= minEpochMillisDigits:
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, invalidTimestamp(raw)
		}
		return time.UnixMilli(millis).UTC(), nil
	case len(raw) == 8:
		t, err := time.ParseInLocation("20060102", raw, time.UTC)
		if err != nil {
			return time.Time{}, invalidTimestamp(raw)
		}
		return t, nil
	case len(raw) == 4:
		t, err := time.ParseInLocation("2006", raw, time.UTC)
		if err != nil {
			return time.Time{}, invalidTimestamp(raw)
		}
		return t, nil
	default:
		return time.Time{}, invalidTimestamp(raw)
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func invalidTimestamp(raw string) error {
	return errs.NewValueIsInvalidErrorWithCause("timestamp", fmt.Errorf("%q is not a date", raw))
}

// Timestamp is a JSON input type for optional dates. It accepts a string in
// any form ParseTimestamp understands, a number of epoch milliseconds, or null.
// Valid is false when the field was absent, null or an empty string.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*ts = Timestamp{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*ts = Timestamp{}
			return nil
		}
		t, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		*ts = Timestamp{Time: t, Valid: true}
		return nil
	}

	var millis json.Number
	if err := json.Unmarshal(data, &millis); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("timestamp", err)
	}
	n, err := millis.Int64()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("timestamp", err)
	}
	*ts = Timestamp{Time: time.UnixMilli(n).UTC(), Valid: true}
	return nil
}

// Ptr returns nil for an invalid Timestamp and a pointer to the time otherwise.
func (ts Timestamp) Ptr() *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}
