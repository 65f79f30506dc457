package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/domain/linen"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/metrics"
)

func TestMetrics_ContadoresDeLenceria(t *testing.T) {
	m := metrics.New()
	m.UnmatchedLinenName(linen.KindIncoming)
	m.UnmatchedLinenName(linen.KindIncoming)
	m.LinenReportGenerated("pdf")

	expected := `
# HELP haru_linen_unmatched_names_total Etiquetas registradas que no coinciden con ninguna categoría del catálogo.
# TYPE haru_linen_unmatched_names_total counter
haru_linen_unmatched_names_total{kind="incoming"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "haru_linen_unmatched_names_total"))
	n, err := testutil.GatherAndCount(m.Registry(), "haru_linen_reports_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveHTTP("GET", "/api/linen/report", 200, 15*time.Millisecond)
	m.ChatSubscribed()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `haru_http_requests_total{method="GET",route="/api/linen/report",status="200"} 1`)
	assert.Contains(t, body, "haru_chat_subscribers 1")
	assert.Contains(t, body, "go_goroutines")
}
