package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Crimone/Scoparia/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks github.com/Crimone/Scoparia/logic IMetrics

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	ServiceStarted()
	CycleCompleted(seconds float64)
	SiteFetched(site string, stubCount int)
	SiteFetchFailed(site string)
	ThreadResolved(cache string)
	PostResolved(cache string)
	NotificationSent(channel string)
	NotificationFailed(channel string)
	SubscriberCount(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	webRequestsIn       *prometheus.HistogramVec
	serviceStarted      prometheus.Counter
	cycleDuration       prometheus.Histogram
	stubsFetched        *prometheus.CounterVec
	siteFetchFailures   *prometheus.CounterVec
	threadsResolved     *prometheus.CounterVec
	postsResolved       *prometheus.CounterVec
	notificationsSent   *prometheus.CounterVec
	notificationsFailed *prometheus.CounterVec
	subscriberCount     prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.cycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "cycle_duration",
		Help: "Duration in seconds of notification cycles",
	})
	prometheus.Register(res.cycleDuration)

	res.stubsFetched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stubs_fetched",
		Help: "Number of new feed entries fetched",
	}, []string{"site"})
	prometheus.Register(res.stubsFetched)

	res.siteFetchFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "site_fetch_failures",
		Help: "Number of failed feed fetches",
	}, []string{"site"})
	prometheus.Register(res.siteFetchFailures)

	res.threadsResolved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "threads_resolved",
		Help: "Number of thread resolutions",
	}, []string{"cache"})
	prometheus.Register(res.threadsResolved)

	res.postsResolved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "posts_resolved",
		Help: "Number of post resolutions",
	}, []string{"cache"})
	prometheus.Register(res.postsResolved)

	res.notificationsSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_sent",
		Help: "Number of notifications sent",
	}, []string{"channel"})
	prometheus.Register(res.notificationsSent)

	res.notificationsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_failed",
		Help: "Number of notification sends that failed",
	}, []string{"channel"})
	prometheus.Register(res.notificationsFailed)

	res.subscriberCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "subscriber_count",
		Help: "Number of subscribers on record",
	})
	prometheus.Register(res.subscriberCount)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{
		label: label,
		start: time.Now(),
		hgvec: m.webRequestsIn,
	}
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Inc()
}

func (m *metrics) CycleCompleted(seconds float64) {
	m.cycleDuration.Observe(seconds)
}

func (m *metrics) SiteFetched(site string, stubCount int) {
	m.stubsFetched.WithLabelValues(site).Add(float64(stubCount))
}

func (m *metrics) SiteFetchFailed(site string) {
	m.siteFetchFailures.WithLabelValues(site).Inc()
}

func (m *metrics) ThreadResolved(cache string) {
	m.threadsResolved.WithLabelValues(cache).Inc()
}

func (m *metrics) PostResolved(cache string) {
	m.postsResolved.WithLabelValues(cache).Inc()
}

func (m *metrics) NotificationSent(channel string) {
	m.notificationsSent.WithLabelValues(channel).Inc()
}

func (m *metrics) NotificationFailed(channel string) {
	m.notificationsFailed.WithLabelValues(channel).Inc()
}

func (m *metrics) SubscriberCount(count int) {
	m.subscriberCount.Set(float64(count))
}
