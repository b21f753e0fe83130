package cmd

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"furnidata-manager/core/config"
	"furnidata-manager/core/metrics"
	"furnidata-manager/core/middleware/auth"
	"furnidata-manager/core/server"
	"furnidata-manager/feature/audit"
	"furnidata-manager/feature/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDeps(apiKey string) *deps {
	rec := metrics.New()
	svc := catalog.NewService(nil, nil, catalog.Defaults{}, nil, rec, zap.NewNop())
	return &deps{
		cfg:     &config.Config{Server: server.Config{Port: "0", ApiKey: apiKey}},
		logger:  zap.NewNop(),
		metrics: rec,
		catalog: svc,
		audit:   audit.NewService(svc, nil, "arcturus", zap.NewNop()),
	}
}

func TestNewServer_Routes(t *testing.T) {
	app, err := newServer(testDeps("secret"))
	require.NoError(t, err)

	t.Run("MetricsArePublic", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
	})

	t.Run("FeaturesNeedKey", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/furnidata/decode", strings.NewReader(`[["s","1","a"]]`)))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("DecodeWithKey", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/furnidata/decode", strings.NewReader(`[["s","1","a"]]`))
		req.Header.Set(auth.HeaderName, "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		// The decode is visible on the metrics endpoint.
		resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `furnidata_decodes_total{format="chunked"} 1`)
	})

	t.Run("AuditDisabledWithoutDatabase", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/audit", nil)
		req.Header.Set(auth.HeaderName, "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}
