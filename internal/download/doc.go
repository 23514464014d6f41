package download

// Package download fetches remote files by URL and saves them under the
// name of the URL's last path segment. Downloads are fire-and-forget: the
// caller gets no result and failures are only logged.
