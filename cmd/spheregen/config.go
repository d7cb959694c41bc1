// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/uvsphere/base/errors"
	"cogentcore.org/uvsphere/base/iox/tomlx"
	"cogentcore.org/uvsphere/base/iox/yamlx"
	"cogentcore.org/uvsphere/base/reflectx"
)

// Config is the configuration for spheregen. It can be loaded from
// a TOML or YAML file, and command line flags override file values.
type Config struct {

	// Output is the file to write the mesh to, or - for standard output.
	Output string `default:"sphere.obj"`

	// Format is the mesh file format (obj or off). If it is empty,
	// the format is taken from the Output file extension.
	Format string

	// LogLevel is the minimum level of log messages shown
	// (debug, info, warn or error).
	LogLevel string `default:"info"`

	// Caps configures the grid-with-caps sphere.
	Caps CapsConfig

	// Poles configures the grid-with-shared-poles sphere.
	Poles PolesConfig
}

// CapsConfig configures the grid-with-caps sphere.
type CapsConfig struct {

	// N is the number of rings and columns.
	N int `default:"32"`

	// RequireEven rejects an odd N.
	RequireEven bool

	// UV assigns spherical texture coordinates.
	UV bool `default:"true"`
}

// PolesConfig configures the grid-with-shared-poles sphere.
type PolesConfig struct {

	// Precision is the number of rings and columns of quads.
	Precision int `default:"48"`
}

// NewConfig returns a new [Config] with default values.
func NewConfig() *Config {
	cfg := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(cfg))
	return cfg
}

// Open loads the config from the given TOML (.toml) or YAML
// (.yaml, .yml) file, on top of the current values.
func (cfg *Config) Open(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Open(cfg, filename)
	case ".yaml", ".yml":
		return yamlx.Open(cfg, filename)
	}
	return fmt.Errorf("spheregen: unsupported config file %q: must be .toml, .yaml or .yml", filename)
}
