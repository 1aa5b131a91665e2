// Package version exposes build metadata for the binary.
package version

import (
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// Populated by the linker via -ldflags; callers only see Data().
var (
	rawVersion = "dev"
	rawCommit  = ""
	rawDate    = ""
)

// Info captures the build metadata for the binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

var (
	infoOnce sync.Once
	info     Info
)

// Data returns best-effort build metadata: linker-injected values first, go
// build debug information second, development defaults last.
func Data() Info {
	infoOnce.Do(func() {
		info = Info{
			Version:   strings.TrimSpace(rawVersion),
			Commit:    strings.TrimSpace(rawCommit),
			BuildDate: strings.TrimSpace(rawDate),
		}

		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			fillFromBuildInfo(buildInfo)
		}

		if !releasedVersion(info.Version) {
			info.Version = "dev"
		}
		if info.Commit == "" {
			info.Commit = "unknown"
		} else {
			info.Commit = shortenCommit(info.Commit)
		}
		if info.BuildDate == "" {
			info.BuildDate = "unknown"
		}
	})
	return info
}

func fillFromBuildInfo(buildInfo *debug.BuildInfo) {
	if !releasedVersion(info.Version) && releasedVersion(buildInfo.Main.Version) {
		info.Version = buildInfo.Main.Version
	}
	if info.Commit == "" {
		if rev := setting(buildInfo.Settings, "vcs.revision"); rev != "" {
			info.Commit = rev
			if setting(buildInfo.Settings, "vcs.modified") == "true" {
				info.Commit += "-dirty"
			}
		}
	}
	if info.BuildDate == "" {
		if t := setting(buildInfo.Settings, "vcs.time"); t != "" {
			if parsed, err := time.Parse(time.RFC3339, t); err == nil {
				info.BuildDate = parsed.UTC().Format(time.RFC3339)
			} else {
				info.BuildDate = t
			}
		}
	}
}

func setting(settings []debug.BuildSetting, key string) string {
	for _, s := range settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

func releasedVersion(value string) bool {
	return value != "" && value != "dev" && value != "(devel)" && strings.HasPrefix(value, "v")
}

func shortenCommit(commit string) string {
	const shortLen = 12
	if len(commit) <= shortLen {
		return commit
	}
	return commit[:shortLen]
}
