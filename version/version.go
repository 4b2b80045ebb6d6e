package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// Set at build time using -ldflags.
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info is the resolved build information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
	IsDirty   bool   `json:"is_dirty"`
}

// GetVersionInfo merges the link-time variables with the embedded build info.
func GetVersionInfo() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(info, bi)
	}
	return info
}

func applyBuildInfo(info *Info, bi *debug.BuildInfo) {
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = shortCommit(s.Value)
			}
		case "vcs.modified":
			info.IsDirty = s.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		}
	}
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String returns "version[-commit][-dirty]".
func (i *Info) String() string {
	s := i.Version
	if i.GitCommit != "" {
		s += "-" + i.GitCommit
	}
	if i.IsDirty {
		s += "-dirty"
	}
	return s
}

// GetShortVersion returns a short version string.
func GetShortVersion() string {
	return GetVersionInfo().String()
}

// GetFullVersion returns the short version followed by build details.
func GetFullVersion() string {
	info := GetVersionInfo()
	full := info.String()
	if info.BuildTime != "" {
		full += fmt.Sprintf(" (built %s", info.BuildTime)
		if info.GoVersion != "" {
			full += ", " + info.GoVersion
		}
		full += ")"
	}
	return full
}
