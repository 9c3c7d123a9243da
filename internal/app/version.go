package app

import (
	"fmt"
	"log/slog"
)

// Build metadata, injected with
// -ldflags "-X github.com/heartmarshall/focuslog-backend/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s+%s", Version, Commit)
}

func buildAttrs() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("time", BuildTime),
	)
}
