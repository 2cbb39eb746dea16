package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidepool.dev/internal/timeouts"
)

func TestServeAndShutdown(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	srv := New(ln.Addr().String(), handler, hclog.NewNullLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * timeouts.Shutdown):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServeBadAddr(t *testing.T) {
	t.Parallel()

	srv := New("not-an-address", http.NotFoundHandler(), hclog.NewNullLogger())
	err := srv.ListenAndServe(context.Background())
	assert.Error(t, err)
}

func TestNewAppliesHeaderTimeout(t *testing.T) {
	t.Parallel()

	srv := New(":0", http.NotFoundHandler(), hclog.NewNullLogger())
	assert.Equal(t, timeouts.ReadHeader, srv.httpServer.ReadHeaderTimeout)
}
