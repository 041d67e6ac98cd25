// Package config defines the format-agnostic catalog model for the
// application, along with the Loader interface for reading catalogs from
// various sources.
//
// The `config.Model` is the single source of truth for the `catalog`
// package. Concrete loaders, such as for HCL and YAML, are provided in
// separate packages.
package config
