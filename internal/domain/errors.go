package domain

import "errors"

var (
	ErrRatingNotFound      = errors.New("rating not found")
	ErrFxRateNotFound      = errors.New("exchange rate not found")
	ErrEmptyBatch          = errors.New("batch contains no rows")
	ErrUnsupportedUpload   = errors.New("unsupported upload format")
	ErrNoCommittableRows   = errors.New("no rows eligible for commit")
	ErrResolverUnavailable = errors.New("no resolution sources configured")
)
