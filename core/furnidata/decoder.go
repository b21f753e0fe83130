package furnidata

import "strings"

// Format identifies which wire shape a payload was decoded from.
type Format string

const (
	// FormatEmpty is reported for blank payloads; nothing is parsed.
	FormatEmpty Format = "empty"
	// FormatXML is a well-formed XML furnidata document.
	FormatXML Format = "xml"
	// FormatChunked is the bracketed [[ ... ]] text format.
	FormatChunked Format = "chunked"
)

// Result is the outcome of a single decode call.
type Result struct {
	Format Format
	Items  []Item
	// Aliased counts the items appended by alias synthesis.
	Aliased int
}

// Decoder turns raw furnidata text into items. The zero value is not ready;
// use NewDecoder. A Decoder holds no per-call state and may be shared.
type Decoder struct {
	// Aliases is the equivalence table applied after decoding. Nil disables synthesis.
	Aliases []AliasPair
	// Sentinel replaces escape tokens during the call. Zero picks one per call.
	Sentinel rune
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithAliases replaces the alias table. Passing nil disables synthesis.
func WithAliases(pairs []AliasPair) Option {
	return func(d *Decoder) { d.Aliases = pairs }
}

// WithSentinel fixes the placeholder rune instead of picking one per call.
func WithSentinel(r rune) Option {
	return func(d *Decoder) { d.Sentinel = r }
}

// NewDecoder returns a decoder using DefaultAliases.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{Aliases: DefaultAliases}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode substitutes escape tokens, detects the format, decodes the items and
// applies alias synthesis. It never fails: malformed input yields fewer items.
func (d *Decoder) Decode(raw string) *Result {
	if strings.TrimSpace(raw) == "" {
		return &Result{Format: FormatEmpty, Items: []Item{}}
	}

	sentinel := d.Sentinel
	if sentinel == 0 {
		sentinel = PickSentinel(raw)
	}
	payload := EncodeQuotesWith(raw, sentinel)

	res := &Result{}
	if root, err := parseDocument(payload); err == nil {
		res.Format = FormatXML
		res.Items = decodeDocument(root, sentinel)
	} else {
		res.Format = FormatChunked
		res.Items = DecodeChunked(payload, sentinel)
	}
	if res.Items == nil {
		res.Items = []Item{}
	}

	decoded := len(res.Items)
	res.Items = ApplyAliases(res.Items, d.Aliases)
	res.Aliased = len(res.Items) - decoded

	return res
}

// Decode decodes raw with the default decoder and returns its items.
func Decode(raw string) []Item {
	return NewDecoder().Decode(raw).Items
}
