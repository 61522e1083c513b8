package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvLogFile names the environment variable that enables file logging.
// Hooks run under git, where passing flags is impractical.
const EnvLogFile = "HOOKMASTER_LOG_FILE"

// OpenFile returns a size-rotated log file writer for path.
// Rotation limits default to 1MB, 2 backups, 30 days and can be overridden
// with HOOKMASTER_LOG_MAX_SIZE, HOOKMASTER_LOG_MAX_BACKUPS and
// HOOKMASTER_LOG_MAX_AGE.
func OpenFile(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
	}
	if v, ok := envInt("HOOKMASTER_LOG_MAX_SIZE"); ok && v > 0 {
		lj.MaxSize = v
	}
	if v, ok := envInt("HOOKMASTER_LOG_MAX_BACKUPS"); ok && v >= 0 {
		lj.MaxBackups = v
	}
	if v, ok := envInt("HOOKMASTER_LOG_MAX_AGE"); ok && v > 0 {
		lj.MaxAge = v
	}
	return lj, nil
}

func envInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
