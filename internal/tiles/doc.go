package tiles

// Package tiles talks to the remote static-map service. It builds the request
// URL for a view state and performs a single GET per call: no retries, no
// caching. Any non-200 response or transport error is reported as
// ErrFetchFailed.
