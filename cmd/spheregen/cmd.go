// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/uvsphere/base/errors"
	"cogentcore.org/uvsphere/base/logx"
	"cogentcore.org/uvsphere/mesh"
	"cogentcore.org/uvsphere/meshio"
	"cogentcore.org/uvsphere/shape"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCmd returns the spheregen root command with its
// caps and poles subcommands.
func NewRootCmd() *cobra.Command {
	cfg := NewConfig()
	var configFile string

	root := &cobra.Command{
		Use:           "spheregen",
		Short:         "Generate a UV sphere mesh",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := openConfig(cmd.Flags(), cfg, configFile); err != nil {
					return errors.Log(err)
				}
			}
			level, err := logx.ParseLevel(cfg.LogLevel)
			if err != nil {
				return errors.Log(err)
			}
			logx.UserLevel = level
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "TOML or YAML config file; flags override its values")
	pf.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file, or - for standard output")
	pf.StringVar(&cfg.Format, "format", cfg.Format, "mesh format (obj or off); default from the output extension")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level (debug, info, warn, error)")

	caps := &cobra.Command{
		Use:   "caps",
		Short: "Generate a sphere as a grid of rings closed by a south pole fan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.Log(run(cmd, cfg, "caps", func() (*mesh.Mesh, error) {
				ms, err := shape.CapSphereOptions{RequireEven: cfg.Caps.RequireEven}.New(cfg.Caps.N)
				if err != nil {
					return nil, err
				}
				if cfg.Caps.UV {
					shape.AssignUV(ms)
				}
				return ms, nil
			}))
		},
	}
	caps.Flags().IntVarP(&cfg.Caps.N, "rings", "n", cfg.Caps.N, "number of rings and columns")
	caps.Flags().BoolVar(&cfg.Caps.RequireEven, "require-even", cfg.Caps.RequireEven, "reject an odd number of rings")
	caps.Flags().BoolVar(&cfg.Caps.UV, "uv", cfg.Caps.UV, "assign spherical texture coordinates")

	poles := &cobra.Command{
		Use:   "poles",
		Short: "Generate a sphere as a grid with shared pole and seam columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.Log(run(cmd, cfg, "poles", func() (*mesh.Mesh, error) {
				sp, err := shape.NewSphere(cfg.Poles.Precision)
				if err != nil {
					return nil, err
				}
				return sp.Mesh()
			}))
		},
	}
	poles.Flags().IntVarP(&cfg.Poles.Precision, "precision", "p", cfg.Poles.Precision, "number of rings and columns of quads")

	root.AddCommand(caps, poles)
	return root
}

// openConfig loads the config file while keeping the values
// of flags that were set on the command line.
func openConfig(flags *pflag.FlagSet, cfg *Config, filename string) error {
	changed := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})
	if err := cfg.Open(filename); err != nil {
		return err
	}
	for name, val := range changed {
		if err := flags.Set(name, val); err != nil {
			return err
		}
	}
	return nil
}

// run generates a mesh with gen and writes it to the configured output.
func run(cmd *cobra.Command, cfg *Config, kind string, gen func() (*mesh.Mesh, error)) error {
	ms, err := gen()
	if err != nil {
		return err
	}
	if err := write(cmd, cfg, ms); err != nil {
		return err
	}
	slog.Info("generated sphere", "kind", kind, "vertices", ms.NumVertices(), "faces", ms.NumFaces(),
		"closed", ms.IsClosed(), "boundaryEdges", ms.BoundaryEdges(), "output", cfg.Output)
	bb := ms.BBox()
	slog.Debug("sphere bounds", "min", bb.Min, "max", bb.Max)
	return nil
}

func write(cmd *cobra.Command, cfg *Config, ms *mesh.Mesh) error {
	var format meshio.Format
	var err error
	switch {
	case cfg.Format != "":
		format, err = meshio.ParseFormat(cfg.Format)
	case cfg.Output == "-":
		format = meshio.OBJ
	default:
		format, err = meshio.FormatFromFilename(cfg.Output)
	}
	if err != nil {
		return err
	}
	if cfg.Output == "-" {
		return meshio.Write(cmd.OutOrStdout(), ms, format)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	err = meshio.Write(f, ms, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	return nil
}
