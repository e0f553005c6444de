package middleware

import (
	"context"
	"errors"
	"net/http"
	"saapadu/shared"
	"saapadu/shared/constant"
	"saapadu/shared/storage"
	"saapadu/transport/http/response"
	"strconv"
	"strings"
)

const keyRateLimit = "limiter"

// RateLimit counts requests per client in the shared store, so every instance enforces the
// same fixed window. A store failure lets the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limit := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limit.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := shared.BuildKey(keyRateLimit, a.getClientIP(r), a.getUA(r))

			count, err := a.hit(r.Context(), key, limit.WindowSeconds)
			if err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limit.WindowSeconds))

			if count > limit.MaxRequests {
				w.Header().Set(constant.RequestHeaderRetryAfter, strconv.Itoa(limit.WindowSeconds))
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(limit.MaxRequests-count))

			next.ServeHTTP(w, r)
		})
	}
}

// hit records one request under key and returns the count so far in the window.
func (a *appMiddleware) hit(ctx context.Context, key string, windowSeconds int) (int, error) {
	var count int

	err := a.store.Get(ctx, key, &count)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return 0, err //nolint:wrapcheck
	}

	count++

	if err := a.store.Save(ctx, key, count, windowSeconds); err != nil {
		return 0, err //nolint:wrapcheck
	}

	return count, nil
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
