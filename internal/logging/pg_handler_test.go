package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/legacylifegroup/funnel-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	return db
}

func TestPGHandlerOnlyErrorAndAbove(t *testing.T) {
	h := NewPGHandler(setupLogDB(t))
	defer h.Stop()

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPGHandlerPersistsRecordAttrs(t *testing.T) {
	db := setupLogDB(t)
	h := NewPGHandler(db)
	defer h.Stop()

	record := slog.NewRecord(time.Now(), slog.LevelError, "lead capture failed", 0)
	record.AddAttrs(
		slog.String("session_id", "sess-1"),
		slog.String("brand_id", "veteran-legacy-life"),
		slog.String("action", "capture_lead"),
		slog.String("error", "connection refused"),
		slog.Float64("latency_ms", 42),
		slog.Int("attempt", 2),
	)
	require.NoError(t, h.Handle(context.Background(), record))
	h.flush()

	var entry models.SystemLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "lead capture failed", entry.Message)
	assert.Equal(t, "sess-1", entry.SessionID)
	assert.Equal(t, "veteran-legacy-life", entry.BrandID)
	assert.Equal(t, "capture_lead", entry.Action)
	assert.Equal(t, "connection refused", entry.Error)
	assert.Equal(t, 42, entry.LatencyMs)
	assert.JSONEq(t, `{"attempt":2}`, string(entry.Extra))
}
