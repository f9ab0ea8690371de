package viewer

// Package viewer composes the pure navigation policy with the tile fetcher.
// The Service owns the single mutable view state: it applies an action,
// fetches the image for the new view, stores it in the image file and
// reports a Snapshot to the UI. All calls are synchronous.
