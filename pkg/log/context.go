package log

import (
	"context"
	"maps"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	fieldsKey
)

// WithRequestID returns ctx carrying the request id written on every
// entry logged through a *Ctx method.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request id, or "" if none is set or ctx is nil.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithFields returns ctx carrying extra fields for every entry logged with it.
// Later keys overwrite earlier ones; the parent's map is never modified.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	fields := maps.Clone(FieldsFromContext(ctx))
	if fields == nil {
		fields = make(map[string]any, len(keysAndValues)/2)
	}
	addPairs(fields, keysAndValues)
	return context.WithValue(ctx, fieldsKey, fields)
}

// FieldsFromContext returns the fields set by WithFields, or nil.
func FieldsFromContext(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey).(map[string]any)
	return fields
}
