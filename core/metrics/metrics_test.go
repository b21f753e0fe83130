package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"furnidata-manager/core/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveDecode(t *testing.T) {
	r := metrics.New()

	r.ObserveDecode("xml", 10, 2, 5*time.Millisecond)
	r.ObserveDecode("chunked", 3, 0, time.Millisecond)
	r.ObserveDecode("xml", 1, 1, time.Millisecond)

	expected := `
# HELP furnidata_decodes_total Payloads decoded, by detected format.
# TYPE furnidata_decodes_total counter
furnidata_decodes_total{format="chunked"} 1
furnidata_decodes_total{format="xml"} 2
# HELP furnidata_items_decoded_total Items produced by the decoders, before alias synthesis.
# TYPE furnidata_items_decoded_total counter
furnidata_items_decoded_total 14
# HELP furnidata_aliases_synthesized_total Items appended by alias synthesis.
# TYPE furnidata_aliases_synthesized_total counter
furnidata_aliases_synthesized_total 3
`
	err := testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"furnidata_decodes_total", "furnidata_items_decoded_total", "furnidata_aliases_synthesized_total")
	assert.NoError(t, err)

	count, err := testutil.GatherAndCount(r.Registry(), "furnidata_decode_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_SourceError(t *testing.T) {
	r := metrics.New()
	r.SourceError("http")
	r.SourceError("http")
	r.SourceError("storage")

	expected := `
# HELP furnidata_source_errors_total Failures retrieving a payload, by source kind.
# TYPE furnidata_source_errors_total counter
furnidata_source_errors_total{kind="http"} 2
furnidata_source_errors_total{kind="storage"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "furnidata_source_errors_total"))
}

func TestRecorder_Nil(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.ObserveDecode("xml", 1, 0, time.Millisecond)
		r.SourceError("http")
	})
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.New()
	r.ObserveDecode("chunked", 4, 0, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `furnidata_decodes_total{format="chunked"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
