// Package cmd provides the subcommands for driving confix language sessions
// from the command line.
package cmd

// CacheIdentifier is the kong variable identifier containing the path to
// the runtime cache directory.
var CacheIdentifier = "cache"
