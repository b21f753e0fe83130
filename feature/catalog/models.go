package catalog

import (
	"errors"
	"fmt"
	"strings"

	"furnidata-manager/core/furnidata"
)

var (
	// ErrEmptySource is returned when neither the request nor the configuration names a payload.
	ErrEmptySource = errors.New("no furnidata source given and no default configured")
	// ErrSourceUnavailable wraps every failure to retrieve a payload.
	ErrSourceUnavailable = errors.New("furnidata source unavailable")
	// ErrItemNotFound is returned by lookups without a match.
	ErrItemNotFound = errors.New("furniture item not found")
)

// SourceKind tells where a payload came from.
type SourceKind string

const (
	SourceHTTP    SourceKind = "http"
	SourceStorage SourceKind = "storage"
	SourceInline  SourceKind = "inline"
)

// Source is a resolved payload location.
type Source struct {
	Location string     `json:"location" yaml:"location"`
	Kind     SourceKind `json:"kind" yaml:"kind"`
}

// Catalog is one decoded furnidata payload.
type Catalog struct {
	Source  Source           `json:"source" yaml:"source"`
	Format  furnidata.Format `json:"format" yaml:"format"`
	Items   []furnidata.Item `json:"items" yaml:"items"`
	Aliased int              `json:"aliased" yaml:"aliased"`
}

// Decoded returns the items produced by the decoder, without alias clones.
// Alias synthesis only appends, so they are the leading items.
func (c *Catalog) Decoded() []furnidata.Item {
	return c.Items[:len(c.Items)-c.Aliased]
}

// Summary aggregates a catalog without listing its items.
type Summary struct {
	Source     Source           `json:"source" yaml:"source"`
	Format     furnidata.Format `json:"format" yaml:"format"`
	Total      int              `json:"total" yaml:"total"`
	Decoded    int              `json:"decoded" yaml:"decoded"`
	Aliased    int              `json:"aliased" yaml:"aliased"`
	Placeable  int              `json:"placeable" yaml:"placeable"`
	Other      int              `json:"other" yaml:"other"`
	Rare       int              `json:"rare" yaml:"rare"`
	FurniLines map[string]int   `json:"furni_lines" yaml:"furni_lines"`
}

// LookupResult lists the catalog items matching one identifier.
type LookupResult struct {
	Source     Source           `json:"source" yaml:"source"`
	Identifier string           `json:"identifier" yaml:"identifier"`
	Matches    []furnidata.Item `json:"matches" yaml:"matches"`
}

// NotFoundError is returned when a lookup has no match. It carries the
// closest file names and matches ErrItemNotFound with errors.Is.
type NotFoundError struct {
	Identifier  string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s: %s", ErrItemNotFound, e.Identifier)
	}
	return fmt.Sprintf("%s: %s (did you mean %s?)", ErrItemNotFound, e.Identifier, strings.Join(e.Suggestions, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}
