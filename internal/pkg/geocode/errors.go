package geocode

import "errors"

var ErrNoMatch = errors.New("no match found for address")
