package transport_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jrsteele09/go-oauth-client/transport"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := 0
	originalNow := transport.NowTimeFunc
	transport.NowTimeFunc = func() time.Time {
		ticks++
		return start.Add(time.Duration(ticks) * 250 * time.Millisecond)
	}
	defer func() { transport.NowTimeFunc = originalNow }()

	req := &transport.Request{
		Method: http.MethodPost,
		URL:    "https://auth.example.com/token",
		Header: http.Header{"Authorization": []string{"Basic c2VjcmV0"}},
		Body:   []byte("client_secret=s3cr3t"),
	}

	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		next := transport.DoerFunc(func(ctx context.Context, r *transport.Request) (*transport.Response, error) {
			return &transport.Response{StatusCode: http.StatusOK, Body: []byte(`{"access_token":"tok3n"}`)}, nil
		})

		res, err := transport.WithLogging(next, logger).Do(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)

		out := buf.String()
		require.Contains(t, out, `"level":"debug"`)
		require.Contains(t, out, `"status":200`)
		require.Contains(t, out, `"url":"https://auth.example.com/token"`)
		require.Contains(t, out, `"elapsed":250`)
		require.NotContains(t, out, "s3cr3t")
		require.NotContains(t, out, "c2VjcmV0")
		require.NotContains(t, out, "tok3n")
	})

	t.Run("failure", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		cause := errors.New("dial tcp: connection refused")
		next := transport.DoerFunc(func(ctx context.Context, r *transport.Request) (*transport.Response, error) {
			return nil, cause
		})

		_, err := transport.WithLogging(next, logger).Do(context.Background(), req)
		require.ErrorIs(t, err, cause)
		require.Contains(t, buf.String(), `"level":"error"`)
		require.Contains(t, buf.String(), "connection refused")
	})
}
