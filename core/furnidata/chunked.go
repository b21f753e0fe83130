package furnidata

import (
	"regexp"

	"furnidata-manager/core/utils"
)

var (
	// chunkPattern matches one [[ ... ]] table; the span may cross lines.
	chunkPattern = regexp.MustCompile(`(?s)\[\[.*?\]\]`)
	// fragmentPattern matches one [ ... ] item inside a chunk.
	fragmentPattern = regexp.MustCompile(`\[(.*?)\]`)
)

// fieldSetter assigns one positional field to an item.
type fieldSetter func(item *Item, value string, sentinel rune)

// chunkedFields maps positions in a chunked fragment to item fields.
// The slice index is the field position.
var chunkedFields = []fieldSetter{
	func(i *Item, v string, _ rune) { i.Kind = Kind(v) },
	func(i *Item, v string, _ rune) { i.ID = utils.ToInt(v) },
	func(i *Item, v string, _ rune) { i.ClassName = v },
	func(i *Item, v string, _ rune) { i.Revision = utils.ToInt(v) },
	func(i *Item, v string, _ rune) { i.Category = v },
	func(i *Item, v string, _ rune) { i.XDim = utils.ToInt(v) },
	func(i *Item, v string, _ rune) { i.YDim = utils.ToInt(v) },
	func(i *Item, v string, _ rune) { i.PartColors = v },
	func(i *Item, v string, s rune) { i.Name = DecodeQuotes(v, s) },
	func(i *Item, v string, s rune) { i.Description = DecodeQuotes(v, s) },
	func(i *Item, v string, _ rune) { i.AdURL = v },
	func(i *Item, v string, _ rune) { i.OfferID = utils.ToInt(v) },
	func(i *Item, v string, _ rune) { i.Buyout = utils.IsTruthy(v) },
	func(i *Item, v string, _ rune) { i.RentOfferID = utils.ToInt(v) },
	func(i *Item, v string, _ rune) { i.RentBuyout = utils.ToInt(v) },
	func(i *Item, v string, _ rune) { i.BuildersClub = utils.IsTruthy(v) },
	func(i *Item, v string, _ rune) { i.ExcludedDynamic = utils.IsTruthy(v) },
	func(i *Item, v string, _ rune) { i.BuildersClubOfferID = utils.ToInt(v) },
	func(i *Item, v string, _ rune) { i.CustomParams = v },
	func(i *Item, v string, _ rune) { i.SpecialType = utils.ToInt(v) },
	func(i *Item, v string, _ rune) { i.CanStandOn = utils.IsTruthy(v) },
	func(i *Item, v string, _ rune) { i.CanSitOn = utils.IsTruthy(v) },
	func(i *Item, v string, _ rune) { i.CanLayOn = utils.IsTruthy(v) },
	func(i *Item, v string, _ rune) { i.FurniLine = v },
	func(i *Item, v string, _ rune) { i.Environment = v },
	func(i *Item, v string, _ rune) { i.Rare = utils.IsTruthy(v) },
}

// ChunkedFieldCount is the number of positions a complete fragment carries.
var ChunkedFieldCount = len(chunkedFields)

// DecodeChunked decodes the bracketed text format. payload must already have
// had its escape tokens replaced with sentinel. Items come out in chunk order,
// then fragment order within the chunk.
func DecodeChunked(payload string, sentinel rune) []Item {
	var items []Item

	for _, chunk := range chunkPattern.FindAllString(payload, -1) {
		for _, match := range fragmentPattern.FindAllStringSubmatch(chunk, -1) {
			fields := SplitFields(match[1])
			if len(fields) == 0 {
				continue
			}
			items = append(items, itemFromFields(fields, sentinel))
		}
	}

	return items
}

func itemFromFields(fields []string, sentinel rune) Item {
	var item Item
	for pos, set := range chunkedFields {
		set(&item, fieldAt(fields, pos), sentinel)
	}
	item.finish()
	return item
}
