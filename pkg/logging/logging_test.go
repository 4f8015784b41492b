package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_ContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, true, slog.LevelInfo)

	ctx := AppendCtx(context.Background(), slog.String("file", "a.jls"))
	ctx = AppendCtx(ctx, slog.Int("markers", 3))
	log.InfoContext(ctx, "done")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "done", rec["msg"])
	assert.Equal(t, "a.jls", rec["file"])
	assert.Equal(t, float64(3), rec["markers"])
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, false, slog.LevelWarn)
	log.Info("hidden")
	assert.Empty(t, buf.String())
	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestAppendCtx_DoesNotMutateParent(t *testing.T) {
	parent := AppendCtx(context.Background(), slog.String("a", "1"))
	_ = AppendCtx(parent, slog.String("b", "2"))

	attrs, _ := parent.Value(ctxKey{}).([]slog.Attr)
	require.Len(t, attrs, 1)
	assert.Equal(t, "a", attrs[0].Key)
}

func TestRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jpegdump.log")
	w := RotatingFile(path)
	defer w.Close()

	log := Logger(w, false, slog.LevelInfo)
	log.Info("written")
	assert.FileExists(t, path)
}
