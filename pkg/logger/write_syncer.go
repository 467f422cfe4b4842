package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
)

// ReopenableWriteSyncer is a zapcore.WriteSyncer whose file can be reopened after logrotate
// moved it away.
type ReopenableWriteSyncer struct {
	path string
	cur  atomic.Pointer[os.File]
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	ws := &ReopenableWriteSyncer{
		path: path,
	}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *ReopenableWriteSyncer) Path() string {
	return ws.path
}

// Reload opens the file at Path again, creating it and its directory if rotation removed them,
// and closes the previous handle.
func (ws *ReopenableWriteSyncer) Reload() error {
	if err := os.MkdirAll(filepath.Dir(ws.path), 0o755); err != nil {
		return fmt.Errorf("ReopenableWriteSyncer.Reload: %w", err)
	}
	file, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("ReopenableWriteSyncer.Reload: %w", err)
	}
	if old := ws.cur.Swap(file); old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	return ws.cur.Load().Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	return ws.cur.Load().Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	return ws.cur.Load().Close()
}
