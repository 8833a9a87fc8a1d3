package metrics

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/learnpath/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/courses/{courseId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/courses/1", "/courses/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/courses/{courseId}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requestDuration))
}

func TestMetrics_ObserveViews(t *testing.T) {
	m := New()

	m.ObserveViews(models.Views{
		EnrolledCourses: []models.CourseListItem{{ID: "1", Progress: 13}, {ID: "2", Progress: 100}},
		StreakDays:      5,
		HighestStreak:   12,
		TotalGems:       30,
	})

	assert.Equal(t, 30.0, testutil.ToFloat64(m.totalGems))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.streakDays))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.highestStreak))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.enrolled))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.rewardClaimed))
	assert.Equal(t, 13.0, testutil.ToFloat64(m.courseProgress.WithLabelValues("1")))

	m.ObserveViews(models.Views{
		EnrolledCourses:       []models.CourseListItem{{ID: "1", Progress: 20}},
		HasClaimedDailyReward: true,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.rewardClaimed))
	assert.Equal(t, 1, testutil.CollectAndCount(m.courseProgress))
}

func TestMetrics_ObserveViews_Concurrent(t *testing.T) {
	m := New()
	views := func(progress int) models.Views {
		return models.Views{EnrolledCourses: []models.CourseListItem{
			{ID: "1", Progress: progress},
			{ID: "2", Progress: progress},
		}}
	}
	m.ObserveViews(views(0))

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(progress int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				m.ObserveViews(views(progress))
			}
		}(i)
	}

	seen := make([]int, 0, 100)
	for i := 0; i < 100; i++ {
		seen = append(seen, testutil.CollectAndCount(m.courseProgress))
	}
	wg.Wait()

	for _, count := range seen {
		assert.Equal(t, 2, count)
	}
	assert.Equal(t, 2, testutil.CollectAndCount(m.courseProgress))

	m.ObserveViews(models.Views{EnrolledCourses: []models.CourseListItem{{ID: "2", Progress: 50}}})
	assert.Equal(t, 1, testutil.CollectAndCount(m.courseProgress))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.courseProgress.WithLabelValues("2")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveViews(models.Views{TotalGems: 7})
	rec := httptest.NewRecorder()

	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "learnpath_total_gems 7")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
