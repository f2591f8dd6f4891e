package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/timewheel/internal/picker"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "timewheel-debug.log"

// debugLog is a no-op logger unless debug mode is enabled.
var debugLog = zap.NewNop()

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = zap.NewNop()
		return nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{DebugLogPath}
	cfg.ErrorOutputPaths = []string{DebugLogPath}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.Sampling = nil

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugLog = logger
	debugLog.Debug("debug start", zap.String("log_file", DebugLogPath))
	return nil
}

// CloseDebugLogger flushes the debug log.
func CloseDebugLogger() {
	debugLog.Debug("debug end")
	_ = debugLog.Sync()
	debugLog = zap.NewNop()
}

// SetDebugLogger replaces the debug logger.
func SetDebugLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	debugLog = logger
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.Debug("key press", zap.String("key", msg.String()))
}

// LogTransition logs a session state change.
func LogTransition(sessionID string, from, to picker.State, reason string) {
	if from == to {
		return
	}
	debugLog.Debug("transition",
		zap.String("session", sessionID),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("reason", reason),
	)
}

// LogSettle logs a wheel settling on a value.
func LogSettle(sessionID string, field picker.Field, value int) {
	debugLog.Debug("settle",
		zap.String("session", sessionID),
		zap.Stringer("field", field),
		zap.Int("value", value),
	)
}

// LogReconcile logs a candidate adjusted to stay inside the bounds.
func LogReconcile(sessionID string, before, after picker.Candidate) {
	if before == after {
		return
	}
	debugLog.Debug("reconcile",
		zap.String("session", sessionID),
		zap.Stringer("before", before),
		zap.Stringer("after", after),
	)
}

// LogStale logs a dropped message from an earlier session or scroll.
func LogStale(kind string, sessionID string, seq int) {
	debugLog.Debug("stale message",
		zap.String("kind", kind),
		zap.String("session", sessionID),
		zap.Int("seq", seq),
	)
}

// LogError logs an error.
func LogError(context string, err error) {
	debugLog.Error(context, zap.Error(err))
}
