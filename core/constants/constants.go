package constants

const (
	// Version of the realpay binary, overridden at build time with -ldflags.
	Version = "v0.1.0"
)
