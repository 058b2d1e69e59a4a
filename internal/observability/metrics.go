package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful signups, labelled by activity.",
	}, []string{"activity"})
	signupRejectionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "signup_rejections_total",
		Help:      "Number of signup attempts against unknown activities.",
	})
	activitiesSeeded = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "activities_seeded",
		Help:      "Number of activities loaded from the seed catalog at startup.",
	})
)

func init() {
	prometheus.MustRegister(signupsTotal, signupRejectionsTotal, activitiesSeeded)
}

// RecordSignup increments the signup counter for the activity.
func RecordSignup(activity string) {
	signupsTotal.WithLabelValues(activity).Inc()
}

// RecordSignupRejected counts a signup against an unknown activity.
func RecordSignupRejected() {
	signupRejectionsTotal.Inc()
}

// SetActivitiesSeeded records the seed catalog size.
func SetActivitiesSeeded(n int) {
	activitiesSeeded.Set(float64(n))
}
