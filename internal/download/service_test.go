package download

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ytget/imgdrop/internal/storage"
)

// recordingSaver captures saves instead of touching the disk
type recordingSaver struct {
	mu    sync.Mutex
	saved map[string][]byte
	err   error
}

func (r *recordingSaver) Save(name string, data []byte) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	if r.saved == nil {
		r.saved = make(map[string][]byte)
	}
	r.saved[name] = data
	return "/saved/" + name, nil
}

func (r *recordingSaver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/dir/file.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			_, _ = w.Write([]byte("index"))
			return
		}
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newObservedService(saver storage.Saver) (*Service, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return NewService(saver, zap.New(core)), logs
}

func TestNewService(t *testing.T) {
	service := NewService(nil, nil)

	if service.client == nil {
		t.Error("Expected default HTTP client")
	}
	if service.client.Timeout != DefaultTimeout {
		t.Errorf("Expected timeout %v, got %v", DefaultTimeout, service.client.Timeout)
	}
}

func TestDownload_SavesUnderLastSegment(t *testing.T) {
	server := newTestServer(t)
	saver := &recordingSaver{}
	service, logs := newObservedService(saver)

	service.Download(server.URL + "/dir/file.png")
	service.Wait()

	require.Equal(t, 1, saver.count())
	assert.Equal(t, "png-bytes", string(saver.saved["file.png"]))
	assert.Equal(t, 1, logs.FilterMessage("download saved").Len())
	assert.Equal(t, 0, logs.FilterMessage("download failed").Len())
}

func TestDownload_ToDirectory(t *testing.T) {
	server := newTestServer(t)
	dir := t.TempDir()
	service := NewService(storage.NewDirSaver(dir), nil)

	service.Download(server.URL + "/dir/file.png")
	service.Download(server.URL + "/dir/file.png")
	service.Wait()

	for _, name := range []string{"file.png", "file (1).png"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, "png-bytes", string(data))
	}
}

func TestDownload_NoPathSegmentFailsSilently(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("index"))
	}))
	t.Cleanup(server.Close)

	saver := &recordingSaver{}
	service, logs := newObservedService(saver)

	assert.NotPanics(t, func() {
		service.Download(server.URL + "/")
		service.Download(server.URL + "/dir/..")
		service.Download(server.URL + "/a%2Fb.jpg")
		service.Download("https://x.test/")
		service.Wait()
	})

	assert.Equal(t, int32(0), hits.Load(), "an unnamed URL must not be requested")
	assert.Equal(t, 0, saver.count(), "no save may be attempted")

	failures := logs.FilterMessage("download failed").All()
	require.Len(t, failures, 4)
	for _, entry := range failures {
		assert.Equal(t, zap.ErrorLevel, entry.Level)
		err, ok := entry.Context[1].Interface.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrNaming))
	}
}

func TestDownload_NetworkFailuresAreLogged(t *testing.T) {
	server := newTestServer(t)
	saver := &recordingSaver{}
	service, logs := newObservedService(saver)

	service.Download(server.URL + "/missing.png")

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()
	service.Download(closedURL + "/gone.png")

	service.Wait()

	assert.Equal(t, 0, saver.count())
	failures := logs.FilterMessage("download failed").All()
	require.Len(t, failures, 2)
	for _, entry := range failures {
		err, ok := entry.Context[1].Interface.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrNetwork), "got %v", err)
	}
}

func TestDownload_SaveFailureIsLogged(t *testing.T) {
	server := newTestServer(t)
	saver := &recordingSaver{err: errors.New("read-only file system")}
	service, logs := newObservedService(saver)

	service.Download(server.URL + "/dir/file.png")
	service.Wait()

	failures := logs.FilterMessage("download failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, server.URL+"/dir/file.png", failures[0].ContextMap()["url"])
}

func TestSetHTTPClient(t *testing.T) {
	service := NewService(nil, nil)
	client := &http.Client{}
	service.SetHTTPClient(client)

	if service.client != client {
		t.Error("Expected client to be replaced")
	}
}
