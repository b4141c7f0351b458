package http

import (
	"logstats/internal/shared/svcerrors"
)

const (
	codeInvalidRequestBody      = "HTTP_1400"
	codeRequestValidationFailed = "HTTP_1401"
)

// errInvalidRequestBody returns an error for a body that is not valid JSON.
func errInvalidRequestBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, "invalid json request body", cause)
}

// errRequestValidationFailed returns an error for a structurally valid body
// that fails field validation.
func errRequestValidationFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeRequestValidationFailed, "request validation failed", cause)
}
