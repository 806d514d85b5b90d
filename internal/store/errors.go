package store

import "errors"

// ErrNoCredential is returned by [TokenStore.Load] when no credential has
// been stored, or the stored one was cleared.
var ErrNoCredential = errors.New("no stored credential")
