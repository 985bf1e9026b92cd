package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Options 日誌輸出設定
type Options struct {
	Format string    // "text"（tint 彩色輸出）或 "json"
	Debug  bool      // 降到 debug 等級並附上原始碼位置
	Writer io.Writer // 預設 os.Stderr
}

// New 依設定建立 logger
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	addSource := false
	if opts.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	var handler slog.Handler
	if opts.Format == "json" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: addSource,
			Level:     level,
		})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			AddSource:  addSource,
			Level:      level,
			TimeFormat: time.DateTime,
			NoColor:    !isTerminal(w),
		})
	}

	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
