package headerutil

import "github.com/indigo-web/bishop/internal/strutil"

// canonical holds header names whose word-boundary title-casing isn't a plain per-segment
// capitalization, e.g. "WWW-Authenticate" (not "Www-Authenticate") and "ETag" (not "Etag").
var canonical = map[string]string{
	"etag":             "ETag",
	"www-authenticate": "WWW-Authenticate",
	"content-md5":      "Content-MD5",
}

// TitleCase renders a header name in canonical Title-Case, capitalizing the first letter of
// every '-'-separated word: "content-type" -> "Content-Type". A small set of well-known headers
// with irregular casing are special-cased.
func TitleCase(key string) string {
	for lower, exact := range canonical {
		if strutil.CmpFold(lower, key) {
			return exact
		}
	}

	out := make([]byte, len(key))
	capitalize := true

	for i := 0; i < len(key); i++ {
		c := key[i]

		switch {
		case c == '-':
			capitalize = true
		case capitalize:
			c = toUpper(c)
			capitalize = false
		default:
			c = toLower(c)
		}

		out[i] = c
	}

	return string(out)
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
