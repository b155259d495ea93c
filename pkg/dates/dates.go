// Package dates provides the reporting date-range contract shared by the
// MIS query endpoints: an inclusive from/to pair of calendar dates.
package dates

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Format is the wire format for calendar dates.
const Format = "2006-01-02"

// ErrMissingRange indicates the required from/to query parameters were not supplied.
var ErrMissingRange = errors.New("missing required query params: from, to (YYYY-MM-DD)")

// Range is an inclusive calendar date range.
type Range struct {
	From time.Time
	To   time.Time
}

// FromString returns the range start in wire format.
func (r Range) FromString() string {
	return r.From.Format(Format)
}

// ToString returns the range end in wire format.
func (r Range) ToString() string {
	return r.To.Format(Format)
}

// ParseRange reads the from/to query parameters. Both are required and must
// be YYYY-MM-DD; from must not be after to.
func ParseRange(values url.Values) (Range, error) {
	from := values.Get("from")
	to := values.Get("to")
	if from == "" || to == "" {
		return Range{}, ErrMissingRange
	}

	start, err := time.Parse(Format, from)
	if err != nil {
		return Range{}, fmt.Errorf("invalid from date %q: expected YYYY-MM-DD", from)
	}

	end, err := time.Parse(Format, to)
	if err != nil {
		return Range{}, fmt.Errorf("invalid to date %q: expected YYYY-MM-DD", to)
	}

	if start.After(end) {
		return Range{}, fmt.Errorf("from date %s is after to date %s", from, to)
	}

	return Range{From: start, To: end}, nil
}
