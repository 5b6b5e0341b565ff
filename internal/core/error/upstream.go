package errx

import "net/http"

// WrapUpstream maps generative service failures to the unified error type.
// Every failure surfaces as one generic user-facing message; the request is
// never retried and never produces a partial answer.
func WrapUpstream(err error) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     err,
		Kind:    ErrUpstreamUnavailable,
		Status:  http.StatusBadGateway,
		Message: UpstreamUnavailableMessage,
	}
}
