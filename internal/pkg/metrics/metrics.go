package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the settlement and attendance paths.
var (
	PaymentOrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coachdesk_payment_orders_created_total",
		Help: "Number of payment orders successfully created with the gateway.",
	})

	PaymentsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coachdesk_payments_settled_total",
		Help: "Number of fee ledgers transitioned to paid after signature verification.",
	})

	SignaturesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coachdesk_payment_signatures_rejected_total",
		Help: "Number of settlement callbacks rejected for an invalid signature.",
	})

	AttendanceAppends = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coachdesk_attendance_appends_total",
		Help: "Number of attendance entries appended to student records.",
	})

	AttendanceSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coachdesk_attendance_skipped_total",
		Help: "Number of attendance targets skipped because the student record was missing.",
	})
)
