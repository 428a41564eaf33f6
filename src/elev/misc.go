package elev

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"liftsim/src/types"
)

// InitLogger installs the default logger: text output with compact time and file:line source.
func InitLogger(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
}

func FormatCommand(cmd types.Command) string {
	switch cmd.Action {
	case types.ActCall:
		return fmt.Sprintf("Call(%d)", cmd.Floor)
	case types.ActOrder:
		return fmt.Sprintf("Order(%d)", cmd.Floor)
	case types.ActSpawn:
		return fmt.Sprintf("Spawn(%d)", cmd.Floor)
	case types.ActSpawnRandom:
		return "SpawnRandom"
	}
	return "Unknown"
}
