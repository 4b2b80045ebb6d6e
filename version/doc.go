// Package version carries the build version of the inspectree binary.
//
// Values are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/inspectree/version.Version=1.0.0" ./cmd/inspectree
//
// When they are not set, the VCS stamp embedded by the Go toolchain is used.
package version
