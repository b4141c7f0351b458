package analyzers

import (
	"fmt"

	"logstats/internal/shared/svcerrors"
)

const (
	codeInputFileNotFound   = "STATS_1404"
	codeNoEntriesFound      = "STATS_1422"
	codeNoTimeElapsed       = "STATS_1423"
	codeAggregatorFinalized = "STATS_1424"

	codeInternalFileReadFailed = "STATS_9000"
)

// errInputFileNotFound returns an error when a requested input path does not exist.
// Fatal for the whole run: no partial output is produced.
func errInputFileNotFound(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeInputFileNotFound, fmt.Sprintf("input file does not exist: %s", path), cause)
}

// errNoEntriesFound returns an error when events-per-second is requested but
// zero valid records were accumulated across all inputs.
func errNoEntriesFound() *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeNoEntriesFound, "no log entries found", nil)
}

// errNoTimeElapsed returns an error when events-per-second is requested but the
// earliest and latest timestamps coincide (or were never observed).
func errNoTimeElapsed() *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeNoTimeElapsed, "no time elapsed between earliest and latest entries", nil)
}

// errAggregatorFinalized returns an error when ProcessAll is called after Results.
func errAggregatorFinalized() *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeAggregatorFinalized, "aggregator already finalized", nil)
}

// errInternalFileReadFailed returns an error when reading an input file fails.
func errInternalFileReadFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalFileReadFailed, fmt.Errorf("fileReadFailed %s: %w", path, cause))
}
