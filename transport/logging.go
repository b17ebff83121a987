package transport

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// WithLogging decorates next so every exchange is logged to logger.
// Only the method, URL, status and elapsed time are logged: headers and
// bodies carry credentials and are never written.
func WithLogging(next Doer, logger zerolog.Logger) Doer {
	return DoerFunc(func(ctx context.Context, req *Request) (*Response, error) {
		start := NowTimeFunc()
		res, err := next.Do(ctx, req)
		elapsed := NowTimeFunc().Sub(start)

		if err != nil {
			logger.Error().Err(err).
				Str("method", req.Method).
				Str("url", req.URL).
				Dur("elapsed", elapsed).
				Msg("Token endpoint request failed")
			return nil, err
		}

		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Int("status", res.StatusCode).
			Int("bytes", len(res.Body)).
			Dur("elapsed", elapsed).
			Msg("Token endpoint request")
		return res, nil
	})
}
