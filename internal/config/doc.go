// Package config provides configuration loading, merging, and validation
// for the go-user-auth server.
//
// Configuration is assembled from the following sources, later sources
// overriding non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The signing secret has no default; [GetStructuredConfig] fails with
// [ErrMissingTokenSignKey] when it is not provided.
package config
