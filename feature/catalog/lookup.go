package catalog

import (
	"sort"
	"strconv"
	"strings"

	"furnidata-manager/core/furnidata"

	"github.com/agnivade/levenshtein"
)

// MaxSuggestions caps the names returned with a failed lookup.
const MaxSuggestions = 5

// Match returns every item identified by identifier, in catalog order.
// A numeric identifier matches the id; anything else matches class name,
// file name, alias or public name case-insensitively.
func Match(items []furnidata.Item, identifier string) []furnidata.Item {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil
	}

	var matches []furnidata.Item
	if id, err := strconv.Atoi(identifier); err == nil {
		for _, item := range items {
			if item.ID == id {
				matches = append(matches, item)
			}
		}
		return matches
	}

	for _, item := range items {
		if strings.EqualFold(item.ClassName, identifier) ||
			strings.EqualFold(item.FileName, identifier) ||
			strings.EqualFold(item.Alias, identifier) ||
			strings.EqualFold(item.Name, identifier) {
			matches = append(matches, item)
		}
	}
	return matches
}

// Suggest returns up to limit distinct file names closest to identifier by
// Levenshtein distance, nearest first, ties broken alphabetically.
// Numeric identifiers get no suggestions.
func Suggest(items []furnidata.Item, identifier string, limit int) []string {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" || limit <= 0 {
		return nil
	}
	if _, err := strconv.Atoi(identifier); err == nil {
		return nil
	}

	type candidate struct {
		name     string
		distance int
	}

	seen := make(map[string]bool, len(items))
	candidates := make([]candidate, 0, len(items))
	for _, item := range items {
		name := item.FileName
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		candidates = append(candidates, candidate{
			name:     name,
			distance: levenshtein.ComputeDistance(identifier, strings.ToLower(name)),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// Summarize counts a catalog's items.
func Summarize(c *Catalog) *Summary {
	s := &Summary{
		Source:     c.Source,
		Format:     c.Format,
		Total:      len(c.Items),
		Decoded:    len(c.Items) - c.Aliased,
		Aliased:    c.Aliased,
		FurniLines: make(map[string]int),
	}
	for _, item := range c.Decoded() {
		switch item.Kind {
		case furnidata.KindPlaceable:
			s.Placeable++
		default:
			s.Other++
		}
		if item.Rare {
			s.Rare++
		}
		if item.FurniLine != "" {
			s.FurniLines[item.FurniLine]++
		}
	}
	return s
}
