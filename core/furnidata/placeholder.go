package furnidata

import (
	"math/rand/v2"
	"strings"
)

// EscapeToken is how the feed spells a literal quote inside text fields.
// The surrounding quote marks belong to the token, so a field such as
// "Big "&QUOTE&" Chair" stays one field once the token is replaced.
const EscapeToken = `"&QUOTE&"`

// SentinelCandidates are private-use code points that stand in for
// EscapeToken while the payload is split into fields.
var SentinelCandidates = []rune{
	'\uE000', '\uE001', '\uE002', '\uE003',
	'\uE004', '\uE005', '\uE006', '\uE007',
}

// PickSentinel returns a random candidate that does not already occur in raw.
// If every candidate occurs, the first one is returned.
func PickSentinel(raw string) rune {
	offset := rand.IntN(len(SentinelCandidates))
	for n := range SentinelCandidates {
		c := SentinelCandidates[(offset+n)%len(SentinelCandidates)]
		if !strings.ContainsRune(raw, c) {
			return c
		}
	}
	return SentinelCandidates[0]
}

// EncodeQuotes replaces every EscapeToken in raw with a freshly picked
// sentinel and returns the substituted text together with that sentinel.
func EncodeQuotes(raw string) (string, rune) {
	sentinel := PickSentinel(raw)
	return EncodeQuotesWith(raw, sentinel), sentinel
}

// EncodeQuotesWith replaces every EscapeToken in raw with sentinel.
func EncodeQuotesWith(raw string, sentinel rune) string {
	return strings.ReplaceAll(raw, EscapeToken, string(sentinel))
}

// DecodeQuotes turns sentinel back into a literal quote mark.
func DecodeQuotes(field string, sentinel rune) string {
	return strings.ReplaceAll(field, string(sentinel), `"`)
}
