package version

import "fmt"

// 建置時以 -ldflags 注入
var (
	Version    = "devel"
	CommitHash = "unknown"
)

func GetVersionString() string {
	return fmt.Sprintf("%s (commit %s)", Version, CommitHash)
}
