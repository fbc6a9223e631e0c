package apiresponses

// Envelope codes. Zero means success, everything else is a failure whose
// Msg carries a human-readable (bilingual) description.
const (
	CodeOK  = 0
	CodeErr = -1
)

// Resp is the wire envelope for all API responses.
type Resp[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// OK wraps data in a success envelope.
func OK[T any](data T) Resp[T] {
	return Resp[T]{Code: CodeOK, Msg: "OK", Data: data}
}

// OKEmpty returns a success envelope without a payload.
func OKEmpty() Resp[struct{}] {
	return OK(struct{}{})
}

// Err returns a failure envelope carrying msg.
func Err(msg string) Resp[struct{}] {
	return Resp[struct{}]{Code: CodeErr, Msg: msg}
}
