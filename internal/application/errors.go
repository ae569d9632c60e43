package application

import "errors"

// Sentinel errors for the request boundary to map onto HTTP statuses. The
// forbidden/unauthenticated distinction is kept here even though both surface
// as 401 on the wire.
var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidInput         = errors.New("invalid scan input")
	ErrUpstreamUnavailable  = errors.New("classifier unavailable")
	ErrPersistence          = errors.New("scan persistence failed")
	ErrAnalyticsUnavailable = errors.New("analytics unavailable")
)
