package download

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrNetwork covers transport failures and non-2xx responses
	ErrNetwork = errors.New("network error")

	// ErrNaming means no file name can be derived from the URL
	ErrNaming = errors.New("no file name in URL")
)

// FilenameFromURL returns the last non-empty path segment of rawURL,
// percent-decoded: "https://x.test/dir/file.png" gives "file.png".
func FilenameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNaming, err)
	}

	segments := strings.Split(u.EscapedPath(), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			continue
		}
		name, err := url.PathUnescape(segments[i])
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNaming, err)
		}
		if name == "." || name == ".." {
			break
		}
		// an escaped separator must not turn into a path
		if strings.ContainsAny(name, `/\`) {
			return "", fmt.Errorf("%w: separator in %q", ErrNaming, name)
		}
		return name, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNaming, rawURL)
}
