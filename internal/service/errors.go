package service

import "errors"

// ErrRequestInFlight is returned when a mutating call is issued for a record
// that already has an unanswered request. The first call owns the outcome;
// the caller should simply wait for it.
var ErrRequestInFlight = errors.New("request already in flight for this record")
