package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandler_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/api/tools/{slug}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/tools/{slug}", "404"))

	for _, slug := range []string{"a", "b"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tools/"+slug, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/tools/{slug}", "404"))
	assert.Equal(t, 2.0, after-before)
}

func TestInstrumentHandler_ResponseControllerReachesWriter(t *testing.T) {
	h := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("chunk"))
		assert.NoError(t, http.NewResponseController(w).Flush())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tools", nil))

	assert.True(t, rr.Flushed)
	assert.Equal(t, "chunk", rr.Body.String())
}

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(downloadsRecorded)
	RecordDownload()
	assert.Equal(t, 1.0, testutil.ToFloat64(downloadsRecorded)-before)

	beforeDup := testutil.ToFloat64(reviewsSubmitted.WithLabelValues("duplicate"))
	RecordReview("duplicate")
	assert.Equal(t, 1.0, testutil.ToFloat64(reviewsSubmitted.WithLabelValues("duplicate"))-beforeDup)
}

func TestHandler(t *testing.T) {
	RecordDownload()

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "tools_directory_catalog_downloads_recorded_total"))
}
