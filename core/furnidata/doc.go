// Package furnidata decodes the furniture catalog feed into Item records.
//
// The feed is published either as an XML document or as a sequence of
// bracketed, comma-separated chunks that only resemble JSON. Both shapes decode
// to the same Item.
//
// # Pipeline
//
//  1. Escape tokens ("&QUOTE&") are replaced by a private-use sentinel rune.
//  2. The payload is parsed strictly as XML; any failure selects the chunked decoder.
//  3. Items are built field by field. Unparseable numbers become 0, booleans are
//     true only for "1" or "true".
//  4. The sentinel is restored to a quote in the free-text fields.
//  5. Alias synthesis clones items listed in the equivalence table.
//
// The package performs no I/O and keeps no state between calls.
//
// # Usage
//
//	items := furnidata.Decode(raw)
//
//	dec := furnidata.NewDecoder(furnidata.WithAliases(nil))
//	res := dec.Decode(raw)
//	fmt.Println(res.Format, len(res.Items))
package furnidata
