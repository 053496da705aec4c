package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yuhsuan-lin/daigou-bot/constant"
	"github.com/yuhsuan-lin/daigou-bot/utils/errors"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	"go.uber.org/zap"
)

// RecoverMiddleware converts panics into the structured error envelope so a
// request cycle never surfaces a raw stack trace.
func RecoverMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
					)
					writeError(w, errors.SetCustomError(constant.ErrInternal))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
