package docserver_test

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/docserver"
	"github.com/dmitrymomot/fieldkit/pkg/field"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/openapi"
)

func freeAddr(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "unable to get free port")
	addr := l.Addr().String()
	require.NoError(t, l.Close(), "close listener")
	return addr
}

func testDocument() *openapi.Document {
	return openapi.NewDocument(openapi.Info{Title: "Test", Version: "1"},
		field.NewSchema("PingDto", field.Named("message", field.String(field.StringOptions{}))),
	)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
	handler := docserver.New(testDocument(), docserver.WithLogger(log)).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, openapi.JSONPath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PingDto")

	assert.Contains(t, buf.String(), "request served")
	assert.Contains(t, buf.String(), `"path":"/openapi.json"`)
}

func TestRunAndShutdown(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)
	srv := docserver.New(testDocument(),
		docserver.WithAddr(addr),
		docserver.WithShutdownTimeout(100*time.Millisecond),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	var err error
	for range 50 {
		resp, err = http.Get("http://" + addr + "/healthz")
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, err, "http get after 50 retries")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
	require.NoError(t, srv.Shutdown(context.Background()), "shutdown")
}

func TestManualShutdown(t *testing.T) {
	t.Parallel()

	start := make(chan struct{})
	srv := docserver.New(testDocument(),
		docserver.WithAddr(freeAddr(t)),
		docserver.WithShutdownTimeout(100*time.Millisecond),
		docserver.WithStartHook(func(_ *slog.Logger) { close(start) }),
	)

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()
	<-start
	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestStartError(t *testing.T) {
	t.Parallel()

	srv := docserver.New(testDocument(), docserver.WithAddr(":invalid"))
	err := srv.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, docserver.ErrStart)
}

func TestOptionsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { docserver.WithAddr("") })
	assert.Panics(t, func() { docserver.WithShutdownTimeout(0) })
	assert.Panics(t, func() { docserver.WithStartHook(nil) })
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docserver.Config{}.Options())
	assert.Len(t, docserver.Config{ReadTimeout: time.Second, ShutdownTimeout: time.Second}.Options(), 2)
}
