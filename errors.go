package contentgen

import "errors"

// Sentinel errors raised by contentgen itself. Provider and transport errors are never
// wrapped; use KindOf or errors.Is to tell them apart.
var (
	ErrEmptyResponse     = errors.New("contentgen: no candidates in the response")
	ErrMalformedResponse = errors.New("contentgen: unexpected response format")
	ErrInvalidConfig     = errors.New("contentgen: configuration is malformed")
)

// ErrorKind tags a Generate failure.
type ErrorKind int

// Error kinds returned by KindOf.
const (
	KindNone ErrorKind = iota
	KindTransport
	KindEmptyResponse
	KindMalformedResponse
	KindInvalidConfig
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTransport:
		return "transport"
	case KindEmptyResponse:
		return "empty_response"
	case KindMalformedResponse:
		return "malformed_response"
	case KindInvalidConfig:
		return "invalid_config"
	default:
		return "unknown"
	}
}

// KindOf classifies err. ErrInvalidConfig comes from the config loaders and never from
// Generate. Anything else that is not one of the sentinels came from the remote call
// (network, auth, quota, client construction) and is KindTransport.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrEmptyResponse):
		return KindEmptyResponse
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, ErrInvalidConfig):
		return KindInvalidConfig
	default:
		return KindTransport
	}
}
