package furnidata_test

import (
	"testing"

	"furnidata-manager/core/furnidata"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSentinel = '\uE005'

func TestDecodeChunked_FullFragment(t *testing.T) {
	payload := `[["s","1","icon*1","0","cat",1,1,"","Name","Desc","",0,"0",0,0,"0","0",0,"","0","0","0","0","line","env","0"]]`

	items := furnidata.DecodeChunked(payload, testSentinel)
	require.Len(t, items, 1)

	want := furnidata.Item{
		Kind:        furnidata.KindPlaceable,
		ID:          1,
		ClassName:   "icon*1",
		FileName:    "icon",
		Alias:       "icon",
		Category:    "cat",
		XDim:        1,
		YDim:        1,
		Name:        "Name",
		Description: "Desc",
		FurniLine:   "line",
		Environment: "env",
	}
	if diff := cmp.Diff(want, items[0]); diff != "" {
		t.Errorf("item mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeChunked_RealisticRow(t *testing.T) {
	payload := `[["s","13","shelves_norja","1","","1","1","#ffffff,#F7EBBC","Beige Bookcase","For nic naks and books","","-1","true","-1","2","1","false","5","params","3","1","TRUE","0","furniline_norja","env","1"]]`

	items := furnidata.DecodeChunked(payload, testSentinel)
	require.Len(t, items, 1)
	item := items[0]

	assert.Equal(t, 13, item.ID)
	assert.Equal(t, 1, item.Revision)
	assert.Equal(t, "#ffffff,#F7EBBC", item.PartColors)
	assert.Equal(t, "Beige Bookcase", item.Name)
	assert.Equal(t, -1, item.OfferID)
	assert.True(t, item.Buyout)
	assert.Equal(t, -1, item.RentOfferID)
	assert.Equal(t, 2, item.RentBuyout)
	assert.True(t, item.BuildersClub)
	assert.False(t, item.ExcludedDynamic)
	assert.Equal(t, 5, item.BuildersClubOfferID)
	assert.Equal(t, "params", item.CustomParams)
	assert.Equal(t, 3, item.SpecialType)
	assert.True(t, item.CanStandOn)
	assert.True(t, item.CanSitOn)
	assert.False(t, item.CanLayOn)
	assert.Equal(t, "furniline_norja", item.FurniLine)
	assert.True(t, item.Rare)
}

func TestDecodeChunked_ShortFragmentDefaults(t *testing.T) {
	items := furnidata.DecodeChunked(`[["i","4001","poster"]]`, testSentinel)
	require.Len(t, items, 1)

	want := furnidata.Item{
		Kind:      furnidata.KindOther,
		ID:        4001,
		ClassName: "poster",
		FileName:  "poster",
		Alias:     "poster",
	}
	assert.Equal(t, want, items[0])
}

func TestDecodeChunked_BadNumbersDefaultToZero(t *testing.T) {
	items := furnidata.DecodeChunked(`[["s","abc","x","r1","c","","wide"]]`, testSentinel)
	require.Len(t, items, 1)

	assert.Equal(t, 0, items[0].ID)
	assert.Equal(t, 0, items[0].Revision)
	assert.Equal(t, 0, items[0].XDim)
	assert.Equal(t, 0, items[0].YDim)
}

func TestDecodeChunked_Ordering(t *testing.T) {
	payload := "[[\"s\",\"1\",\"a\"],[\"s\",\"2\",\"b\"]]\n" +
		"[[\"i\",\"3\",\"c\"],\n[\"i\",\"4\",\"d\"]]"

	items := furnidata.DecodeChunked(payload, testSentinel)
	require.Len(t, items, 4)

	var ids []int
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)
	assert.Equal(t, furnidata.KindOther, items[3].Kind)
}

func TestDecodeChunked_SkipsFragmentsWithoutFields(t *testing.T) {
	payload := `[[],[1,2],["s","7","kept"]]`

	items := furnidata.DecodeChunked(payload, testSentinel)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].ID)
}

func TestDecodeChunked_NoChunks(t *testing.T) {
	assert.Empty(t, furnidata.DecodeChunked(`["s","1","lonely"]`, testSentinel))
	assert.Empty(t, furnidata.DecodeChunked(`not furnidata at all`, testSentinel))
}

func TestDecodeChunked_QuotesRestoredInTextOnly(t *testing.T) {
	raw := `[["s","1","chair","0","cat"&QUOTE&"","1","1","","The "&QUOTE&"Best"&QUOTE&" Chair","A "&QUOTE&"comfy"&QUOTE&" one","http://ad"&QUOTE&""]]`
	payload := furnidata.EncodeQuotesWith(raw, testSentinel)

	items := furnidata.DecodeChunked(payload, testSentinel)
	require.Len(t, items, 1)

	assert.Equal(t, `The "Best" Chair`, items[0].Name)
	assert.Equal(t, `A "comfy" one`, items[0].Description)
	assert.Equal(t, "cat\uE005", items[0].Category)
	assert.Equal(t, "http://ad\uE005", items[0].AdURL)
	assert.NotContains(t, items[0].Name, string(testSentinel))
}

func TestDecodeChunked_EscapeKeepsPositions(t *testing.T) {
	raw := `[["s","1","chair","0","cat","1","1","","Big "&QUOTE&" Chair","desc","ad","7"]]`
	payload := furnidata.EncodeQuotesWith(raw, testSentinel)

	items := furnidata.DecodeChunked(payload, testSentinel)
	require.Len(t, items, 1)
	item := items[0]

	assert.Equal(t, `Big " Chair`, item.Name)
	assert.Equal(t, "desc", item.Description)
	assert.Equal(t, "ad", item.AdURL)
	assert.Equal(t, 7, item.OfferID)
	assert.Equal(t, 1, item.XDim)
	assert.Equal(t, "cat", item.Category)
}

func TestDecodeChunked_KindCopiedVerbatim(t *testing.T) {
	items := furnidata.DecodeChunked(`[["","1","a"],["x","2","b"]]`, testSentinel)
	require.Len(t, items, 2)

	assert.Equal(t, furnidata.Kind(""), items[0].Kind)
	assert.Equal(t, furnidata.Kind("x"), items[1].Kind)
}

func TestChunkedFieldCount(t *testing.T) {
	assert.Equal(t, 26, furnidata.ChunkedFieldCount)
}
