package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/aalvaropc/aoc2021/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("aoc2021 %s (commit=%s, date=%s)", Version, Commit, Date)
}
