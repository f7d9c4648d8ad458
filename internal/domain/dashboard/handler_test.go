package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"veterinaria-api/internal/platform/logger"
)

func TestHandler_UpcomingLimitParam(t *testing.T) {
	cases := map[string]int{
		"":          DefaultUpcomingLimit,
		"?limit=":   DefaultUpcomingLimit,
		"?limit=ab": DefaultUpcomingLimit,
		"?limit=-3": DefaultUpcomingLimit,
		"?limit=0":  DefaultUpcomingLimit,
		"?limit=12": 12,
		"?limit=99": MaxUpcomingLimit,
	}

	for query, want := range cases {
		t.Run(query, func(t *testing.T) {
			repo := &fakeRepo{}
			r := chi.NewRouter()
			RegisterRoutes(r, newTestService(repo), logger.Nop())

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/upcoming-citas"+query, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, want, repo.upcomingLimit)
		})
	}
}
