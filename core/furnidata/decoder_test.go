package furnidata_test

import (
	"strconv"
	"sync"
	"testing"

	"furnidata-manager/core/furnidata"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDecode_Chunked(t *testing.T) {
	raw := `[["s","1","icon*1","0","cat",1,1,"","Name","Desc","",0,"0",0,0,"0","0",0,"","0","0","0","0","line","env","0"]]`

	res := furnidata.NewDecoder().Decode(raw)
	assert.Equal(t, furnidata.FormatChunked, res.Format)
	assert.Zero(t, res.Aliased)
	require.Len(t, res.Items, 1)

	item := res.Items[0]
	assert.Equal(t, furnidata.KindPlaceable, item.Kind)
	assert.Equal(t, 1, item.ID)
	assert.Equal(t, "icon*1", item.ClassName)
	assert.Equal(t, "icon", item.FileName)
	assert.Equal(t, "Name", item.Name)
	assert.False(t, item.Buyout)
}

func TestDecode_Blank(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"Spaces", "   "},
		{"Whitespace", "\n\t\r\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := furnidata.NewDecoder().Decode(tt.raw)
			assert.Equal(t, furnidata.FormatEmpty, res.Format)
			assert.NotNil(t, res.Items)
			assert.Empty(t, res.Items)
		})
	}
}

func TestDecode_XML(t *testing.T) {
	raw := `<furnidata><wallitemtypes><furnitype id="5" classname="chair"><name>Chair</name></furnitype></wallitemtypes></furnidata>`

	res := furnidata.NewDecoder().Decode(raw)
	assert.Equal(t, furnidata.FormatXML, res.Format)
	require.Len(t, res.Items, 1)

	assert.Equal(t, furnidata.KindOther, res.Items[0].Kind)
	assert.Equal(t, 5, res.Items[0].ID)
	assert.Equal(t, "chair", res.Items[0].FileName)
}

func TestDecode_MalformedXMLFallsBackToChunked(t *testing.T) {
	res := furnidata.NewDecoder().Decode(`<furnidata><furnitype id="1" classname="a">`)
	assert.Equal(t, furnidata.FormatChunked, res.Format)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestDecode_EscapedQuotes(t *testing.T) {
	raw := `[["s","1","sofa","0","","1","1","","The "&QUOTE&"Big"&QUOTE&" Sofa","desc","ad"]]`

	for _, sentinel := range furnidata.SentinelCandidates {
		t.Run(strconv.QuoteRune(sentinel), func(t *testing.T) {
			res := furnidata.NewDecoder(furnidata.WithSentinel(sentinel)).Decode(raw)
			require.Len(t, res.Items, 1)
			assert.Equal(t, `The "Big" Sofa`, res.Items[0].Name)
			assert.Equal(t, "desc", res.Items[0].Description)
			assert.Equal(t, "ad", res.Items[0].AdURL)
		})
	}
}

func TestDecode_EscapedQuoteInBothFormats(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		format furnidata.Format
	}{
		{
			name:   "Chunked",
			raw:    `[["s","1","chair","0","cat","1","1","","Big "&QUOTE&" Chair","desc","ad"]]`,
			format: furnidata.FormatChunked,
		},
		{
			name: "XML",
			raw: `<furnidata><roomitemtypes><furnitype id="1" classname="chair">` +
				`<name>Big "&QUOTE&" Chair</name><description>desc</description><adurl>ad</adurl>` +
				`</furnitype></roomitemtypes></furnidata>`,
			format: furnidata.FormatXML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := furnidata.NewDecoder(furnidata.WithAliases(nil)).Decode(tt.raw)
			assert.Equal(t, tt.format, res.Format)
			require.Len(t, res.Items, 1)
			assert.Equal(t, `Big " Chair`, res.Items[0].Name)
			assert.Equal(t, "desc", res.Items[0].Description)
			assert.Equal(t, "ad", res.Items[0].AdURL)
		})
	}
}

func TestDecode_Aliases(t *testing.T) {
	raw := `[["s","13","shelves_norja"],["s","14","chair_plasto*3"]]`

	t.Run("Default", func(t *testing.T) {
		res := furnidata.NewDecoder().Decode(raw)
		assert.Equal(t, 2, res.Aliased)
		require.Len(t, res.Items, 4)

		want := []string{"shelves_norja", "chair_plasto", "shelves_norja_cc", "chair_plasty"}
		var got []string
		for _, item := range res.Items {
			got = append(got, item.FileName)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("file names mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "shelves_norja", res.Items[2].Alias)
		assert.Equal(t, "shelves_norja_cc", res.Items[0].Alias)
	})

	t.Run("Disabled", func(t *testing.T) {
		res := furnidata.NewDecoder(furnidata.WithAliases(nil)).Decode(raw)
		assert.Zero(t, res.Aliased)
		assert.Len(t, res.Items, 2)
	})

	t.Run("Custom", func(t *testing.T) {
		res := furnidata.NewDecoder(furnidata.WithAliases([]furnidata.AliasPair{
			{Canonical: "chair_plasto", Alias: "chair_custom"},
		})).Decode(raw)
		assert.Equal(t, 1, res.Aliased)
		require.Len(t, res.Items, 3)
		assert.Equal(t, "chair_custom", res.Items[2].ClassName)
	})
}

func TestDecode_FormatsAgree(t *testing.T) {
	chunked := `[["i","5","poster*4","0","","0","0","","Poster","Wall poster",""]]`
	xml := `<furnidata><wallitemtypes><furnitype id="5" classname="poster*4">` +
		`<name>Poster</name><description>Wall poster</description>` +
		`</furnitype></wallitemtypes></furnidata>`

	dec := furnidata.NewDecoder()
	fromChunked := dec.Decode(chunked).Items
	fromXML := dec.Decode(xml).Items

	if diff := cmp.Diff(fromChunked, fromXML); diff != "" {
		t.Errorf("formats disagree (-chunked +xml):\n%s", diff)
	}
}

func TestDecode_Concurrent(t *testing.T) {
	dec := furnidata.NewDecoder()
	raw := `[["s","1","a"],["s","2","b"]]`

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := dec.Decode(raw)
			assert.Len(t, res.Items, 2)
		}()
	}
	wg.Wait()
}

func TestDecodeShortcut(t *testing.T) {
	items := furnidata.Decode(`[["s","1","a"]]`)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ClassName)
}
