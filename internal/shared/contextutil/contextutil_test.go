package contextutil_test

import (
	"context"
	"testing"

	"go-smbops/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCallerRoundTrip(t *testing.T) {
	ctx := contextutil.WithCaller(context.Background(), "user-1", "Admin")
	ctx = contextutil.WithRequestID(ctx, "req-1")

	assert.Equal(t, "user-1", contextutil.GetUserID(ctx))
	assert.Equal(t, "Admin", contextutil.GetRole(ctx))
	assert.Equal(t, contextutil.Metadata{RequestID: "req-1", UserID: "user-1"}, contextutil.ExtractMetadata(ctx))
}

func TestGetLogger_Fallbacks(t *testing.T) {
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	def := zap.NewNop()
	assert.Same(t, def, contextutil.GetLogger(context.Background(), def))

	scoped := zap.NewExample()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, def))
}

func TestEnsureLogger_KeepsRequestScopedLogger(t *testing.T) {
	scoped := zap.NewExample().With(zap.String("request_id", "req-1"))
	handlerLogger := zap.NewNop()

	ctx := contextutil.EnsureLogger(contextutil.WithLogger(context.Background(), scoped), handlerLogger)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, nil))

	bare := contextutil.EnsureLogger(context.Background(), handlerLogger)
	assert.Same(t, handlerLogger, contextutil.GetLogger(bare, nil))
}
