package log

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"set", WithRequestID(context.Background(), "req-123"), "req-123"},
		{"overwritten", WithRequestID(WithRequestID(context.Background(), "first"), "second"), "second"},
		{"missing", context.Background(), ""},
		{"nil context", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RequestIDFromContext(tc.ctx); got != tc.want {
				t.Errorf("RequestIDFromContext: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFieldsFromContext_NoFields_ReturnsNil(t *testing.T) {
	if fields := FieldsFromContext(context.Background()); fields != nil {
		t.Errorf("FieldsFromContext: got %v, want nil", fields)
	}
}

func TestWithFields_MergesWithoutTouchingParent(t *testing.T) {
	// Arrange
	parent := WithFields(context.Background(), "screen_name", "alice", "fetcher", "http")

	// Act
	child := WithFields(parent, "fetcher", "chrome", "attempt", 1)

	// Assert
	got := FieldsFromContext(child)
	if got["screen_name"] != "alice" || got["fetcher"] != "chrome" || got["attempt"] != 1 {
		t.Errorf("child fields: got %v", got)
	}
	if parentFields := FieldsFromContext(parent); parentFields["fetcher"] != "http" || len(parentFields) != 2 {
		t.Errorf("parent fields changed: got %v", parentFields)
	}
}

func TestWithFields_IgnoresMalformedPairs(t *testing.T) {
	fields := FieldsFromContext(WithFields(context.Background(), 42, "x", "dangling"))

	if len(fields) != 0 {
		t.Errorf("fields: got %v, want empty", fields)
	}
}
