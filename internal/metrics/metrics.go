// Package metrics exposes Prometheus metrics for HTTP traffic and learner progress.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/learnpath/backend/internal/middleware"
	"github.com/learnpath/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "learnpath"

// Metrics owns a registry with the HTTP and progress collectors
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	totalGems      prometheus.Gauge
	streakDays     prometheus.Gauge
	highestStreak  prometheus.Gauge
	enrolled       prometheus.Gauge
	rewardClaimed  prometheus.Gauge
	courseProgress *prometheus.GaugeVec

	// mu serializes ObserveViews; observed holds the course ids currently exported
	mu       sync.Mutex
	observed map[string]struct{}
}

// New creates and registers all collectors, including the Go runtime and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		observed: make(map[string]struct{}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),
		totalGems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_gems",
			Help:      "Gems collected by the user",
		}),
		streakDays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "streak_days",
			Help:      "Current login streak in days",
		}),
		highestStreak: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "highest_streak_days",
			Help:      "Longest login streak in days",
		}),
		enrolled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "enrolled_courses",
			Help:      "Number of courses the user is enrolled in",
		}),
		rewardClaimed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "daily_reward_claimed",
			Help:      "1 when today's daily reward was claimed",
		}),
		courseProgress: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "course_progress_percent",
				Help:      "Completion percentage of enrolled courses",
			},
			[]string{"course_id"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.totalGems,
		m.streakDays,
		m.highestStreak,
		m.enrolled,
		m.rewardClaimed,
		m.courseProgress,
	)
	return m
}

// Middleware records request counts and durations labelled by chi route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewStatusRecorder(w)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveViews updates the progress gauges. It has the shape of a view listener.
// Course series are updated in place and only series of courses that left the
// enrolled list are deleted, so a scrape never sees a partially rebuilt vector.
func (m *Metrics) ObserveViews(views models.Views) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalGems.Set(float64(views.TotalGems))
	m.streakDays.Set(float64(views.StreakDays))
	m.highestStreak.Set(float64(views.HighestStreak))
	m.enrolled.Set(float64(len(views.EnrolledCourses)))
	if views.HasClaimedDailyReward {
		m.rewardClaimed.Set(1)
	} else {
		m.rewardClaimed.Set(0)
	}

	current := make(map[string]struct{}, len(views.EnrolledCourses))
	for _, course := range views.EnrolledCourses {
		m.courseProgress.WithLabelValues(course.ID).Set(float64(course.Progress))
		current[course.ID] = struct{}{}
	}
	for id := range m.observed {
		if _, ok := current[id]; !ok {
			m.courseProgress.DeleteLabelValues(id)
		}
	}
	m.observed = current
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
