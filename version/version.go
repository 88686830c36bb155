// Package version exposes build identification, overridable at link time:
//
//	go build -ldflags "-X github.com/farcloser/asciify/version.version=v1.2.0 -X github.com/farcloser/asciify/version.commit=$(git rev-parse --short HEAD)"
package version

//nolint:gochecknoglobals // set through -ldflags
var (
	name    = "asciify"
	version = "dev"
	commit  = "unknown"
)

// Name returns the binary name.
func Name() string {
	return name
}

// Version returns the release version.
func Version() string {
	return version
}

// Commit returns the source revision the binary was built from.
func Commit() string {
	return commit
}
