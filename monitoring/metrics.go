package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Bookings by outcome",
		},
		[]string{"status", "seat_class"},
	)

	bookingRevenue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_revenue_total",
			Help: "Confirmed booking revenue",
		},
	)

	cancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_cancellations_total",
			Help: "Bookings flipped to cancelled",
		},
	)

	searchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schedule_searches_total",
			Help: "Schedule search requests served",
		},
	)
)

func TrackBooking(status, seatClass string, revenue float64) {
	bookingsTotal.WithLabelValues(status, seatClass).Inc()
	if revenue > 0 {
		bookingRevenue.Add(revenue)
	}
}

func TrackCancellation() {
	cancellationsTotal.Inc()
}

func TrackSearch() {
	searchesTotal.Inc()
}
