// Package config provides configuration loading for gridfn.
//
// Configuration is a flat map with type-safe accessors, loadable from YAML
// or JSON files. The Settings type maps well-known keys to Functionalize
// options so applications can select interpolation method, bounds policy,
// coordinate system, and snapshot store path from a file.
package config
