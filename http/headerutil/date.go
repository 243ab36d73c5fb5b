// Package headerutil holds the small helpers the decision engine and response assembler share:
// HTTP-date parsing/formatting and header-name canonicalization.
package headerutil

import "time"

// The three date formats RFC 9110 requires servers to accept on input.
const (
	rfc1123 = "Mon, 02 Jan 2006 15:04:05 GMT"
	rfc850  = "Monday, 02-Jan-06 15:04:05 GMT"
	asctime = time.ANSIC
)

var dateFormats = [...]string{rfc1123, rfc850, asctime}

// CanonicalDateFormat is the format new Date/Last-Modified/Expires values are rendered in.
const CanonicalDateFormat = rfc1123

// ParseDate tries each of the three legal HTTP date formats in turn. A value that matches none
// of them is reported as unusable rather than an error: callers treat the header as absent.
func ParseDate(value string) (t time.Time, ok bool) {
	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// FormatDate renders t in the canonical format, always in GMT.
func FormatDate(t time.Time) string {
	return t.UTC().Format(CanonicalDateFormat)
}
