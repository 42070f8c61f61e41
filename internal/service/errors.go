package service

import (
	"errors"
	"strings"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
)

// Kind groups errors by how callers must react to them.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindConfiguration is a setup problem such as an unsupported network.
	KindConfiguration
	// KindValidation is bad caller input, detected before any network call.
	KindValidation
	// KindFunds means the address cannot pay for the intent. Never retried.
	KindFunds
	// KindEndpoint is a single endpoint failure. Retried on the next candidate.
	KindEndpoint
	// KindExhaustion means every candidate failed.
	KindExhaustion
	// KindSigning is a signing failure. Never retried.
	KindSigning
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindFunds:
		return "funds"
	case KindEndpoint:
		return "endpoint"
	case KindExhaustion:
		return "exhaustion"
	case KindSigning:
		return "signing"
	default:
		return "unknown"
	}
}

var (
	ErrUnsupportedNetwork  = errors.New("unsupported network")
	ErrInvalidDestination  = errors.New("invalid destination address")
	ErrNetworkMismatch     = errors.New("address does not belong to the requested network")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrSourceMismatch      = errors.New("source address does not match the signing material")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrNoSpendableOutputs  = errors.New("no spendable outputs")
	ErrEndpointUnavailable = errors.New("endpoint unavailable")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrSigningFailed       = errors.New("signing failed")
	ErrExhausted           = errors.New("all endpoints failed")
	ErrNoEndpoints         = errors.New("no endpoints configured")
)

// Error carries the kind and the failed operation around a cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Op != "" {
		sb.WriteString(e.Op)
		sb.WriteString(": ")
	}
	if e.Err != nil {
		sb.WriteString(e.Err.Error())
	} else {
		sb.WriteString(e.Kind.String() + " error")
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AbortedError is returned when a fatal error stops a broadcast after it
// reached an endpoint. Attempts ends with the endpoint that raised Err.
type AbortedError struct {
	OperationID string
	Attempts    []model.Attempt
	Err         error
}

func (e *AbortedError) Error() string {
	return e.Err.Error()
}

func (e *AbortedError) Unwrap() error {
	return e.Err
}

// AttemptsOf returns the endpoint trail carried by err, if any.
func AttemptsOf(err error) []model.Attempt {
	var e *AbortedError
	if errors.As(err, &e) {
		return e.Attempts
	}
	return nil
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsFatal reports whether err must stop a broadcast instead of moving on to
// the next endpoint.
func IsFatal(err error) bool {
	switch KindOf(err) {
	case KindConfiguration, KindValidation, KindFunds, KindSigning:
		return true
	default:
		return false
	}
}
