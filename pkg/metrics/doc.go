// Package metrics defines Prometheus metrics for the offer service,
// covering submission outcomes, captcha verification and mail delivery.
package metrics
