package context

import (
	"context"

	"github.com/yuhsuan-lin/daigou-bot/constant"
)

// WithSubjectID stores a verified platform subject id in the context.
func WithSubjectID(ctx context.Context, subjectID string) context.Context {
	return context.WithValue(ctx, constant.SubjectIDKey, subjectID)
}

// GetSubjectID returns the verified platform subject id, if any.
func GetSubjectID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.SubjectIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// WithRequestID stores the audit request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}

// GetRequestID returns the audit request id, if any.
func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
