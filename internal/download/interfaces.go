package download

// Downloader defines the interface for the download service.
type Downloader interface {
	// Download starts fetching url in the background and returns at once.
	// Failures are logged, never reported to the caller.
	Download(url string)

	// Wait blocks until all started downloads have finished
	Wait()
}

var _ Downloader = (*Service)(nil)
