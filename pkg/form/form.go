// Package form defines the offer submission payload and its validation
// rules. Validation failures carry the bilingual messages shown to the
// submitter, one per violated field.
package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Bilingual messages surfaced to the submitter on validation failure.
const (
	MsgInvalidName     = "请输入正确的联系人/Please enter your full name"
	MsgInvalidEmail    = "请输入正确的邮箱/Please enter your email"
	MsgCaptchaRequired = "请完成人机验证/Please complete Captcha"
	MsgInvalidCurrency = "请选择正确的货币/Please select a valid currency"
	MsgInvalidPayload  = "提交内容无效/Invalid submission"
)

// ErrUnknownCurrency is returned when decoding a currency outside the
// closed {USDT, CNY} set. Unknown values are rejected, never defaulted.
var ErrUnknownCurrency = errors.New("unknown currency")

// Currency is the closed set of currencies an offer may be made in.
type Currency string

const (
	CurrencyUSDT Currency = "USDT"
	CurrencyCNY  Currency = "CNY"
)

func (c *Currency) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownCurrency, err)
	}
	switch Currency(s) {
	case CurrencyUSDT, CurrencyCNY:
		*c = Currency(s)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
}

// Offer is one contact-form submission from a prospective buyer. It is
// built per request from the JSON body and discarded afterwards.
type Offer struct {
	Name     string   `json:"name" validate:"min=2,max=50"`
	Email    string   `json:"email" validate:"min=3,max=255,email"`
	Currency Currency `json:"currency" validate:"oneof=USDT CNY"`
	Captcha  string   `json:"captcha" validate:"min=16"`
}

// FieldError is a single per-field validation violation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors aggregates every violated field of one submission.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// First returns the message of the first violation, which is what the
// response envelope carries.
func (e ValidationErrors) First() string {
	if len(e) == 0 {
		return MsgInvalidPayload
	}
	return e[0].Message
}

var validate = validator.New()

// Validate checks the submission against the field rules: name length in
// [2,50], email length in [3,255] and RFC-shaped, currency in the closed
// set (a body that omits the field leaves the zero value, which fails
// here), captcha token length of at least 16. All violations are
// reported together.
func (o *Offer) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe.Field()),
		})
	}
	return out
}

func messageFor(field string) string {
	switch field {
	case "Name":
		return MsgInvalidName
	case "Email":
		return MsgInvalidEmail
	case "Currency":
		return MsgInvalidCurrency
	case "Captcha":
		return MsgCaptchaRequired
	}
	return MsgInvalidPayload
}

// BindMessage maps a JSON binding error to the submitter-facing message.
// Currency decoding failures keep their dedicated message; anything else
// (malformed JSON, wrong types) gets the generic one.
func BindMessage(err error) string {
	if errors.Is(err, ErrUnknownCurrency) {
		return MsgInvalidCurrency
	}
	return MsgInvalidPayload
}
