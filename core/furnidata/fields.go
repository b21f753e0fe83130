package furnidata

import "strings"

// bareCutset is trimmed from unquoted values. Brackets appear when the
// fragment pattern swallows the opening bracket of its chunk.
const bareCutset = " \t\r\n[]"

// SplitFields extracts the ordered fields of one bracketed item fragment.
//
// Every quoted string is a field; inside it a backslash takes the next
// character verbatim and is itself dropped. Comma-separated slots that hold no
// quoted string keep their position as trimmed bare values, so `"a",1,"b"`
// yields a, 1, b. A fragment without any quoted string yields nil.
func SplitFields(fragment string) []string {
	var (
		fields   []string
		value    strings.Builder
		bare     strings.Builder
		inQuote  bool
		escaped  bool
		slotUsed bool
		quoted   int
	)

	for _, r := range fragment {
		if inQuote {
			switch {
			case escaped:
				value.WriteRune(r)
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inQuote = false
				fields = append(fields, value.String())
				value.Reset()
				slotUsed = true
				quoted++
			default:
				value.WriteRune(r)
			}
			continue
		}

		switch r {
		case '"':
			inQuote = true
			escaped = false
		case ',':
			if !slotUsed {
				fields = append(fields, strings.Trim(bare.String(), bareCutset))
			}
			bare.Reset()
			slotUsed = false
		default:
			bare.WriteRune(r)
		}
	}

	// An unterminated quote never closes into a field.
	if !slotUsed {
		if tail := strings.Trim(bare.String(), bareCutset); tail != "" {
			fields = append(fields, tail)
		}
	}

	if quoted == 0 {
		return nil
	}
	return fields
}

// fieldAt returns fields[index], or "" when the fragment is too short.
func fieldAt(fields []string, index int) string {
	if index < 0 || index >= len(fields) {
		return ""
	}
	return fields[index]
}
