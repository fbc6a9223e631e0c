// Package offer implements the submission pipeline behind POST
// /api/offer: validate the form, gate it behind human verification, then
// race the notification send against a deadline. Every outcome is
// reported through exactly one response envelope.
package offer

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nichebay/domain-offer/pkg/apiresponses"
	"github.com/nichebay/domain-offer/pkg/captcha"
	"github.com/nichebay/domain-offer/pkg/config"
	"github.com/nichebay/domain-offer/pkg/form"
	"github.com/nichebay/domain-offer/pkg/mail"
	"github.com/nichebay/domain-offer/pkg/metrics"
	"github.com/nichebay/domain-offer/pkg/system"
)

// Bilingual failure messages for the verification and notification
// stages. Validation messages live in pkg/form.
const (
	MsgCaptchaTimeout  = "人机验证超时/Timeout for verify captcha"
	MsgCaptchaRequired = "请完成人机验证/Please complete captcha"
	MsgSendTimeout     = "发送邮件超时/Timeout for sending mail"
	MsgSendFailed      = "发送邮件失败/Failed to send email"
)

// Controller handles offer submissions. Configuration is read-only and
// shared across all in-flight requests; the verifier and sender are
// injected so tests can stub the two outbound dependencies.
type Controller struct {
	log      *zap.SugaredLogger
	verifier captcha.Verifier
	sender   mail.Sender

	sendTimeout time.Duration
}

// NewController wires the submission pipeline together.
func NewController(log *zap.SugaredLogger, cfg config.Config, verifier captcha.Verifier, sender mail.Sender) *Controller {
	return &Controller{
		log:         log,
		verifier:    verifier,
		sender:      sender,
		sendTimeout: time.Duration(cfg.Mail.TimeoutSeconds) * time.Second,
	}
}

func (ctl *Controller) BasePath() string { return "offer" }

func (ctl *Controller) Handlers() []gin.HandlerFunc { return nil }

func (ctl *Controller) Register(rg *gin.RouterGroup) error {
	rg.POST("", ctl.submit)
	return nil
}

func (ctl *Controller) submit(c *gin.Context) {
	const handlerName = "offer"
	log := system.GetReqLogger(c, ctl.log)

	var frm form.Offer
	if err := c.ShouldBindJSON(&frm); err != nil {
		ctl.fail(c, log, handlerName, metrics.OutcomeValidationRejected, form.BindMessage(err), err)
		return
	}

	if err := frm.Validate(); err != nil {
		msg := form.MsgInvalidPayload
		if verrs, ok := err.(form.ValidationErrors); ok {
			msg = verrs.First()
		}
		ctl.fail(c, log, handlerName, metrics.OutcomeValidationRejected, msg, err)
		return
	}

	human, err := ctl.verifier.Verify(c.Request.Context(), frm.Captcha)
	if err != nil {
		metrics.CaptchaVerifyFailures.Inc()
		ctl.fail(c, log, handlerName, metrics.OutcomeCaptchaUnavailable, MsgCaptchaTimeout, err)
		return
	}
	if !human {
		ctl.fail(c, log, handlerName, metrics.OutcomeCaptchaRejected, MsgCaptchaRequired, nil)
		return
	}

	subject := mail.OfferSubject(frm.Name)
	body, err := mail.OfferBody(mail.OfferParams{
		Name:     frm.Name,
		Email:    frm.Email,
		Currency: string(frm.Currency),
	})
	if err != nil {
		ctl.fail(c, log, handlerName, metrics.OutcomeSendFailed, MsgSendFailed, err)
		return
	}

	// The send runs detached from the request context and races a
	// deadline; whichever finishes first decides the response. The
	// buffered channel lets a losing send goroutine exit on its own.
	// A timed-out send may still reach the relay, so delivery is
	// at-most-once-observed with a possible unreported duplicate.
	result := make(chan error, 1)
	go func() {
		result <- ctl.sender.Send(subject, body)
	}()

	deadline := time.NewTimer(ctl.sendTimeout)
	defer deadline.Stop()

	select {
	case <-deadline.C:
		metrics.MailSendTimeouts.Inc()
		log.Warnw("Offer notification send exceeded deadline", "handler", handlerName, "timeout", ctl.sendTimeout)
		ctl.fail(c, log, handlerName, metrics.OutcomeSendTimeout, MsgSendTimeout, nil)
	case err := <-result:
		if err != nil {
			metrics.MailSendFailure.Inc()
			ctl.fail(c, log, handlerName, metrics.OutcomeSendFailed, MsgSendFailed, err)
			return
		}
		metrics.MailSendSuccess.Inc()
		metrics.OfferSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
		c.JSON(http.StatusOK, apiresponses.OK(frm.Email))
	}
}

// fail logs the handler name with the underlying cause and answers with a
// failure envelope. The API route reports failures via the envelope code,
// always with HTTP 200.
func (ctl *Controller) fail(c *gin.Context, log *zap.SugaredLogger, handler, outcome, msg string, err error) {
	metrics.OfferSubmissions.WithLabelValues(outcome).Inc()
	cause := msg
	if err != nil {
		cause = err.Error()
	}
	log.Errorw("Offer submission failed", "handler", handler, "error", cause)
	c.JSON(http.StatusOK, apiresponses.Err(msg))
}
