package site

import "errors"

var (
	ErrSiteNotFound      = errors.New("site not found")
	ErrSiteHasShifts     = errors.New("site still has shifts referencing it")
	ErrSiteNotConfigured = errors.New("site has no configured geofence")
)
