package simplefetch

// Version is the library version, overridable at build time via
// -ldflags "-X github.com/derekvmcintire/simple-fetch-ts.Version=...".
var Version = "1.0.0"
