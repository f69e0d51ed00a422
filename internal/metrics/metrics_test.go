package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGinMiddleware_CountsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/jobs/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "/jobs/:id", "204"))
	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/"+id, nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	after := testutil.ToFloat64(requestTotal.WithLabelValues(http.MethodGet, "/jobs/:id", "204"))
	assert.Equal(t, 2.0, after-before)
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(messages.WithLabelValues("blocked"))
	MessageSent("blocked")
	assert.Equal(t, 1.0, testutil.ToFloat64(messages.WithLabelValues("blocked"))-before)

	before = testutil.ToFloat64(bans)
	Banned(2)
	assert.Equal(t, 2.0, testutil.ToFloat64(bans)-before)
}

func TestHandler_ExposesNamespace(t *testing.T) {
	Applied()
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "naukri_applications_total"))
}
