package bedrock

import "fmt"

// ErrorKind distinguishes where a model invocation failed. Callers generally
// only care that the provider failed; the kind is carried for diagnostics.
type ErrorKind int

const (
	// KindAPI covers errors reported by the Bedrock service itself
	// (auth, throttling, validation).
	KindAPI ErrorKind = iota
	// KindTransport covers connection-level failures (DNS, TLS, timeout).
	KindTransport
	// KindInvocation covers anything else that went wrong during the call.
	KindInvocation
)

func (k ErrorKind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindTransport:
		return "transport"
	default:
		return "invocation"
	}
}

// ProviderError wraps any failure of a model invocation.
type ProviderError struct {
	Kind    ErrorKind
	Code    string // remote error code, when the service reported one
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("bedrock error (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("bedrock %s error: %s", e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a model response that is missing the text
// path its family is expected to produce.
type MalformedResponseError struct {
	Family Family
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unexpected response format from Bedrock model family %s", e.Family)
}
