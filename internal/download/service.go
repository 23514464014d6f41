package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/imgdrop/internal/storage"
)

// DefaultTimeout bounds a single request, including reading the body
const DefaultTimeout = 5 * time.Minute

// Service handles download operations
type Service struct {
	client *http.Client
	saver  storage.Saver
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewService creates a new download service that hands fetched files to
// saver. A nil logger discards logs.
func NewService(saver storage.Saver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: &http.Client{Timeout: DefaultTimeout},
		saver:  saver,
		logger: logger.Named("download"),
	}
}

// SetHTTPClient replaces the client used for fetching
func (s *Service) SetHTTPClient(client *http.Client) {
	s.client = client
}

// Download fetches rawURL in a detached goroutine and saves it. Nothing is
// returned: network and naming failures are logged and dropped.
func (s *Service) Download(rawURL string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		path, err := s.fetchAndSave(context.Background(), rawURL)
		if err != nil {
			s.logger.Error("download failed", zap.String("url", rawURL), zap.Error(err))
			return
		}
		s.logger.Info("download saved", zap.String("url", rawURL), zap.String("path", path))
	}()
}

// Wait blocks until all started downloads have finished
func (s *Service) Wait() {
	s.wg.Wait()
}

// fetchAndSave derives the name first so an unnamed URL costs no request
func (s *Service) fetchAndSave(ctx context.Context, rawURL string) (string, error) {
	name, err := FilenameFromURL(rawURL)
	if err != nil {
		return "", err
	}

	data, err := s.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	if s.saver == nil {
		return "", fmt.Errorf("no save target configured for %s", name)
	}
	path, err := s.saver.Save(name, data)
	if err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}
	return path, nil
}

// fetch buffers the whole response body
func (s *Service) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrNetwork, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}
	return data, nil
}
