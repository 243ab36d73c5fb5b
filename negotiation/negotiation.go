// Package negotiation implements Accept-family header parsing, q-value ranking, and match
// selection, shared by the media-type, language, charset, and encoding negotiation nodes of
// the decision engine.
package negotiation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/indigo-web/bishop/http/headers"
	"github.com/indigo-web/bishop/internal/strutil"
)

// Identity is the coding token implicitly acceptable unless a client explicitly rejects it.
const Identity = "identity"

type candidate struct {
	major, minor string
	quality      float64
}

// parse splits an Accept-family header value on ',', parses each segment's major/minor token
// and q-parameter, and returns the segments sorted descending by quality. The header is
// lowercased first, per the matching rules in §4.2. maxTokens bounds how many comma-separated
// segments are parsed at all, guarding against a client spending the engine's time ranking an
// unbounded offer list; zero or negative means unbounded.
func parse(header string, maxTokens int) []candidate {
	header = strings.ToLower(header)
	segments := strings.Split(header, ",")
	if maxTokens > 0 && len(segments) > maxTokens {
		segments = segments[:maxTokens]
	}
	out := make([]candidate, 0, len(segments))

	for _, seg := range segments {
		seg = strutil.LStripWS(strutil.RStripWS(seg))
		if len(seg) == 0 {
			continue
		}

		major, minor := splitToken(headers.ValueOf(seg))
		out = append(out, candidate{
			major:   major,
			minor:   minor,
			quality: parseQuality(seg),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].quality > out[j].quality
	})

	return out
}

func parseQuality(segment string) float64 {
	raw := headers.ParamOf(strings.ReplaceAll(segment, " ", ""), "q", "1")

	q, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 1
	}

	return q
}

func firstOr(vals []int, or int) int {
	if len(vals) > 0 {
		return vals[0]
	}

	return or
}

func splitToken(s string) (major, minor string) {
	if i := strings.IndexByte(s, '/'); i != -1 {
		return s[:i], s[i+1:]
	}

	return s, ""
}

func matches(offeredMajor, offeredMinor string, c candidate) bool {
	if c.quality == 0 {
		return false
	}

	if c.major != "*" && !strutil.CmpFold(c.major, offeredMajor) {
		return false
	}

	if offeredMinor == "" && c.minor == "" {
		return true
	}

	return c.minor == "*" || strutil.CmpFold(c.minor, offeredMinor)
}

// selectFrom picks, among offered (in the resource's own order), the first one matched by the
// highest-ranked acceptable candidate: acceptable rank dominates offered rank, so the outer loop
// walks candidates in q-descending order and the inner loop walks offered in resource order.
func selectFrom(offered []string, entries []candidate) (string, bool) {
	for _, c := range entries {
		for _, o := range offered {
			major, minor := splitToken(o)
			if matches(major, minor, c) {
				return o, true
			}
		}
	}

	return "", false
}

// Select negotiates a single dimension (media type, language, or charset) against the resource's
// offered list. An absent Accept-family header is treated the same way §4.2 prescribes for
// Accept-Charset: the first offered candidate wins outright. A resource offering nothing for this
// dimension means it doesn't participate in that axis of variance, so negotiation trivially
// succeeds with no chosen value. maxTokens, if given, bounds how many comma-separated offers in
// header are considered (config.Config.Negotiation.MaxAcceptTokens); omit it for no bound.
func Select(offered []string, header string, maxTokens ...int) (chosen string, ok bool) {
	if len(offered) == 0 {
		return "", true
	}

	if len(strutil.LStripWS(strutil.RStripWS(header))) == 0 {
		return offered[0], true
	}

	return selectFrom(offered, parse(header, firstOr(maxTokens, 0)))
}

// SelectEncoding negotiates the content-encoding dimension. Unlike Select, it injects
// identity;q=identityQuality into the parsed Accept-Encoding entries when the client didn't
// mention identity explicitly, so the default coding stays acceptable unless rejected outright.
func SelectEncoding(offered []string, header string, identityQuality float64, maxTokens ...int) (chosen string, ok bool) {
	if len(offered) == 0 {
		return "", true
	}

	if len(strutil.LStripWS(strutil.RStripWS(header))) == 0 {
		return offered[0], true
	}

	entries := parse(header, firstOr(maxTokens, 0))

	hasIdentity := false
	for _, e := range entries {
		if e.major == Identity || e.major == "*" {
			hasIdentity = true
			break
		}
	}

	if !hasIdentity {
		entries = append(entries, candidate{major: Identity, quality: identityQuality})
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].quality > entries[j].quality
		})
	}

	return selectFrom(offered, entries)
}
