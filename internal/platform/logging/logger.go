// Package logging はslogのロガー設定を提供します。
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New は指定されたレベルとフォーマットでロガーを生成し、デフォルトロガーとして設定します。
// format が "text" 以外の場合はJSON形式で出力します。
func New(level, format string) *slog.Logger {
	logger := newLogger(os.Stdout, level, format)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h)
}

// ParseLevel はログレベル文字列をslog.Levelに変換します。不明な値はInfoになります。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
