package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcome label values.
const (
	OutcomeAccepted           = "accepted"
	OutcomeValidationRejected = "validation_rejected"
	OutcomeCaptchaRejected    = "captcha_rejected"
	OutcomeCaptchaUnavailable = "captcha_unavailable"
	OutcomeSendFailed         = "send_failed"
	OutcomeSendTimeout        = "send_timeout"
)

var (
	OfferSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "offer_submissions_total",
		Help: "Total number of offer submissions by final outcome",
	}, []string{"outcome"})
	CaptchaVerifyFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offer_captcha_verify_failures_total",
		Help: "Total number of captcha verification round trips that errored",
	})
	MailSendSuccess = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offer_mail_send_success_total",
		Help: "Total number of offer notifications accepted by the relay",
	})
	MailSendFailure = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offer_mail_send_failure_total",
		Help: "Total number of offer notifications rejected by the relay",
	})
	MailSendTimeouts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offer_mail_send_timeouts_total",
		Help: "Total number of offer notifications abandoned at the deadline",
	})
)

func init() {
	prometheus.MustRegister(
		OfferSubmissions,
		CaptchaVerifyFailures,
		MailSendSuccess,
		MailSendFailure,
		MailSendTimeouts,
	)
}

// Handler exposes the default Prometheus registry as a gin handler.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
