// internal/version/version.go
package version

// Version is stamped by the release workflow via -ldflags; the default
// marks locally built binaries.
var Version = "dev"
