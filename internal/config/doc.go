// Package config defines the format-agnostic manifest model for the
// application, along with the Loader interface for reading it from various
// sources.
//
// The `config.Model` is the single source of truth for the `graph` package.
// Concrete Loader implementations, such as for HCL, live in separate
// packages.
package config
