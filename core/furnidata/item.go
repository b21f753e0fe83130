package furnidata

import "strings"

// Kind classifies an item as floor/wall placeable or as anything else.
//
// The XML decoder only ever yields KindPlaceable or KindOther. The chunked
// decoder copies the first field verbatim, so an empty or unknown tag there
// produces a Kind outside those two values.
type Kind string

const (
	// KindPlaceable marks room items ("s").
	KindPlaceable Kind = "s"
	// KindOther marks wall items and everything not under the room container ("i").
	KindOther Kind = "i"
)

// String returns the single-letter tag used on the wire.
func (k Kind) String() string {
	return string(k)
}

// Item is one decoded furnidata record.
type Item struct {
	Kind      Kind   `json:"type" yaml:"type"`
	ID        int    `json:"id" yaml:"id"`
	ClassName string `json:"classname" yaml:"classname"`
	// FileName is ClassName up to the first '*'. Set once when the item is built.
	FileName string `json:"filename" yaml:"filename"`
	// Alias starts equal to FileName and is repointed by ApplyAliases.
	Alias string `json:"alias" yaml:"alias"`

	Revision            int    `json:"revision" yaml:"revision"`
	Category            string `json:"category" yaml:"category"`
	XDim                int    `json:"xdim" yaml:"xdim"`
	YDim                int    `json:"ydim" yaml:"ydim"`
	PartColors          string `json:"partcolors" yaml:"partcolors"`
	Name                string `json:"name" yaml:"name"`
	Description         string `json:"description" yaml:"description"`
	AdURL               string `json:"adurl" yaml:"adurl"`
	OfferID             int    `json:"offerid" yaml:"offerid"`
	Buyout              bool   `json:"buyout" yaml:"buyout"`
	RentOfferID         int    `json:"rentofferid" yaml:"rentofferid"`
	RentBuyout          int    `json:"rentbuyout" yaml:"rentbuyout"`
	BuildersClub        bool   `json:"bc" yaml:"bc"`
	ExcludedDynamic     bool   `json:"excludeddynamic" yaml:"excludeddynamic"`
	BuildersClubOfferID int    `json:"bcofferid" yaml:"bcofferid"`
	CustomParams        string `json:"customparams" yaml:"customparams"`
	SpecialType         int    `json:"specialtype" yaml:"specialtype"`
	CanStandOn          bool   `json:"canstandon" yaml:"canstandon"`
	CanSitOn            bool   `json:"cansiton" yaml:"cansiton"`
	CanLayOn            bool   `json:"canlayon" yaml:"canlayon"`
	FurniLine           string `json:"furniline" yaml:"furniline"`
	Environment         string `json:"environment" yaml:"environment"`
	Rare                bool   `json:"rare" yaml:"rare"`
}

// FileNameOf returns the part of className before the first '*',
// or className unchanged when it has no '*'.
func FileNameOf(className string) string {
	if idx := strings.Index(className, "*"); idx != -1 {
		return className[:idx]
	}
	return className
}

// finish derives FileName and Alias from ClassName. Both decoders call it
// after every source field has been assigned.
func (i *Item) finish() {
	i.FileName = FileNameOf(i.ClassName)
	i.Alias = i.FileName
}
