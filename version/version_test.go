package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetVersionInfoDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"

	info := GetVersionInfo()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
}

func TestGetVersionInfoRelease(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234"

	info := GetVersionInfo()
	if !info.IsRelease {
		t.Error("1.2.0 should be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("link-time commit must win, got %q", info.GitCommit)
	}
}

func TestApplyBuildInfo(t *testing.T) {
	info := &Info{Version: "dev"}
	applyBuildInfo(info, &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})
	if info.GitCommit != "0123456" {
		t.Errorf("expected short commit, got %q", info.GitCommit)
	}
	if !info.IsDirty || info.BuildTime != "2026-01-02T03:04:05Z" || info.GoVersion != "go1.26.0" {
		t.Errorf("unexpected info %+v", info)
	}
	if info.String() != "dev-0123456-dirty" {
		t.Errorf("unexpected string %q", info.String())
	}
}

func TestGetFullVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	BuildTime = "2026-01-15T10:30:00Z"

	full := GetFullVersion()
	if !strings.HasPrefix(full, "1.0.0") || !strings.Contains(full, "built 2026-01-15T10:30:00Z") {
		t.Errorf("unexpected full version %q", full)
	}
	if !strings.HasPrefix(GetShortVersion(), "1.0.0") {
		t.Errorf("unexpected short version %q", GetShortVersion())
	}
}
