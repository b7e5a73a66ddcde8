package buildinfo

import "sync"

// LazyString returns an accessor that renders the Info built from source on
// first call and returns the same text afterwards. Concurrent first calls
// share one computation. A malformed version panics on every call, as MustNew.
func LazyString(source func() RawInfo) func() string {
	return sync.OnceValue(func() string {
		return MustNew(source()).String()
	})
}

// LazyInfo is the error-returning counterpart of LazyString, for callers that
// would rather show "unknown version" than crash.
func LazyInfo(source func() RawInfo) func() (Info, error) {
	return sync.OnceValues(func() (Info, error) {
		return New(source())
	})
}
