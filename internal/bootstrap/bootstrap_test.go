package bootstrap

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-smbops/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAudit struct {
	entries []AuditLog
}

func (r *recordingAudit) Log(ctx context.Context, entry AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC) }

	l.Log(context.Background(), AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye"})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "audit", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "2026-10-01T12:00:00Z", fields["timestamp"])
}

func TestRunHTTPServer_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	audit := &recordingAudit{}
	done := make(chan error, 1)

	go func() {
		done <- RunHTTPServer(ctx, http.NotFoundHandler(), config.HTTPConfig{Port: "0"}, audit)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Len(t, audit.entries, 1)
	assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
}
