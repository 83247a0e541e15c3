package models

import "errors"

// ErrorKind classifies pipeline failures so callers can pattern-match
// without string inspection.
type ErrorKind int

const (
	// ErrUnclassified covers unexpected failures (network, bad URLs).
	// Its message is generic and never leaks internal detail.
	ErrUnclassified ErrorKind = iota
	// ErrDataFormat means the upstream price payload was missing the
	// expected structure or carried a non-numeric price.
	ErrDataFormat
	// ErrForecastUnavailable means the forecasting collaborator could
	// not produce a forecast.
	ErrForecastUnavailable
	// ErrStatistics means a required statistic is mathematically
	// undefined, e.g. a percent change over a zero baseline.
	ErrStatistics
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDataFormat:
		return "data_format"
	case ErrForecastUnavailable:
		return "forecast_unavailable"
	case ErrStatistics:
		return "statistics"
	default:
		return "unclassified"
	}
}

// DomainError is a classified pipeline failure with a human-readable
// message that is safe to surface verbatim.
type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDataFormatError reports a malformed upstream payload.
func NewDataFormatError(msg string) *DomainError {
	return &DomainError{Kind: ErrDataFormat, Message: msg}
}

// NewForecastUnavailableError reports a model failure.
func NewForecastUnavailableError(msg string, err error) *DomainError {
	return &DomainError{Kind: ErrForecastUnavailable, Message: msg, Err: err}
}

// NewStatisticsError reports an undefined statistic.
func NewStatisticsError(msg string) *DomainError {
	return &DomainError{Kind: ErrStatistics, Message: msg}
}

// NewUnclassifiedError wraps an unexpected failure behind a generic message.
func NewUnclassifiedError(err error) *DomainError {
	return &DomainError{Kind: ErrUnclassified, Message: "failed to run your request", Err: err}
}

// KindOf extracts the error kind, defaulting to ErrUnclassified.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrUnclassified
}

// AsDomain returns the DomainError wrapped in err, if any.
func AsDomain(err error) (*DomainError, bool) {
	var de *DomainError
	ok := errors.As(err, &de)
	return de, ok
}
