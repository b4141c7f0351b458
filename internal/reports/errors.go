package reports

import (
	"fmt"

	"logstats/internal/shared/svcerrors"
)

const (
	codeUnsupportedFormat = "REP_1400"

	codeInternalReportStoreFailed   = "REP_9000"
	codeInternalSerializationFailed = "REP_9001"
)

// errUnsupportedFormat returns an error for an output format outside {json, text}.
func errUnsupportedFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedFormat, fmt.Sprintf("unsupported output format: %q", format), nil)
}

// errInternalReportStoreFailed returns an error when storing the report fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

// errInternalSerializationFailed returns an error when summary serialization fails.
func errInternalSerializationFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSerializationFailed, fmt.Errorf("summarySerializationFailed: %w", cause))
}
