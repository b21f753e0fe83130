package catalog_test

import (
	"testing"

	"furnidata-manager/core/furnidata"
	"furnidata-manager/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lookupItems = []furnidata.Item{
	{Kind: furnidata.KindPlaceable, ID: 13, ClassName: "shelves_norja", FileName: "shelves_norja", Alias: "shelves_norja_cc", Name: "Beige Bookcase", FurniLine: "iced"},
	{Kind: furnidata.KindPlaceable, ID: 14, ClassName: "chair_norja*2", FileName: "chair_norja", Alias: "chair_norja", Name: "Chair", Rare: true},
	{Kind: furnidata.KindOther, ID: 4001, ClassName: "poster", FileName: "poster", Alias: "poster", Name: "Poster"},
	{Kind: furnidata.KindPlaceable, ID: 13, ClassName: "shelves_norja_cc", FileName: "shelves_norja_cc", Alias: "shelves_norja", Name: "Beige Bookcase", FurniLine: "iced"},
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantIDs    []int
		wantNames  []string
	}{
		{"ByID", "13", []int{13, 13}, []string{"shelves_norja", "shelves_norja_cc"}},
		{"ByClassName", "chair_norja*2", []int{14}, []string{"chair_norja*2"}},
		{"ByFileName", "CHAIR_NORJA", []int{14}, []string{"chair_norja*2"}},
		{"ByAlias", "shelves_norja_cc", []int{13, 13}, []string{"shelves_norja", "shelves_norja_cc"}},
		{"ByName", "poster", []int{4001}, []string{"poster"}},
		{"ByPublicName", "beige bookcase", []int{13, 13}, []string{"shelves_norja", "shelves_norja_cc"}},
		{"Padded", "  4001 ", []int{4001}, []string{"poster"}},
		{"Miss", "sofa", nil, nil},
		{"Empty", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := catalog.Match(lookupItems, tt.identifier)
			var ids []int
			var names []string
			for _, m := range matches {
				ids = append(ids, m.ID)
				names = append(names, m.ClassName)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestSuggest(t *testing.T) {
	t.Run("Ranked", func(t *testing.T) {
		got := catalog.Suggest(lookupItems, "shelves_norj", 2)
		assert.Equal(t, []string{"shelves_norja", "shelves_norja_cc"}, got)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		got := catalog.Suggest(lookupItems, "POSTR", 1)
		assert.Equal(t, []string{"poster"}, got)
	})

	t.Run("LimitAboveCandidates", func(t *testing.T) {
		got := catalog.Suggest(lookupItems, "x", catalog.MaxSuggestions)
		assert.Len(t, got, 4)
	})

	t.Run("Numeric", func(t *testing.T) {
		assert.Nil(t, catalog.Suggest(lookupItems, "99", 5))
	})

	t.Run("ZeroLimit", func(t *testing.T) {
		assert.Nil(t, catalog.Suggest(lookupItems, "poster", 0))
	})
}

func TestSummarize(t *testing.T) {
	c := &catalog.Catalog{Format: furnidata.FormatXML, Items: lookupItems, Aliased: 1}

	s := catalog.Summarize(c)
	require.NotNil(t, s)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Decoded)
	assert.Equal(t, 1, s.Aliased)
	assert.Equal(t, 2, s.Placeable)
	assert.Equal(t, 1, s.Other)
	assert.Equal(t, 1, s.Rare)
	assert.Equal(t, map[string]int{"iced": 1}, s.FurniLines)
}

func TestCatalog_Decoded(t *testing.T) {
	c := &catalog.Catalog{Items: lookupItems, Aliased: 1}
	assert.Len(t, c.Decoded(), 3)
	assert.Equal(t, "poster", c.Decoded()[2].ClassName)
}
