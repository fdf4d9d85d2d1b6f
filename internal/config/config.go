// Package config loads the optional YAML configuration of the xlsxdiff
// command line.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/xlsxdiff-go/internal/log"
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff"
)

// EnvFile names the environment variable holding the config file path.
const EnvFile = "XLSXDIFF_CONFIG"

// File mirrors the YAML document. Every field is optional; nil means the
// built-in default (or the command-line flag) applies.
type File struct {
	RowGap           *float64 `yaml:"row_gap"`
	ColumnGap        *float64 `yaml:"column_gap"`
	MaxCells         *int     `yaml:"max_cells"`
	Workers          *int     `yaml:"workers"`
	ReportColumnGaps *bool    `yaml:"report_column_gaps"`
	Sheets           []string `yaml:"sheets"`
	OutDir           *string  `yaml:"out_dir"`
	Format           *string  `yaml:"format"`
	Pretty           *bool    `yaml:"pretty"`

	// Source is the path the file was read from; empty when no file was found.
	Source string `yaml:"-"`
}

// Load reads the configuration. An explicit path must exist. Without one,
// XLSXDIFF_CONFIG is consulted, then <user config dir>/xlsxdiff/config.yaml.
// A missing file in the fallback locations yields an empty File.
func Load(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvFile)
		explicit = path != ""
	}
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			log.WithError(err).Debug("no user config directory")
			return &File{}, nil
		}
		path = filepath.Join(dir, "xlsxdiff", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(source string, data []byte) (*File, error) {
	cfg := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", source, err)
	}
	if cfg.Format != nil && *cfg.Format != "json" && *cfg.Format != "yaml" {
		return nil, fmt.Errorf("parse config %s: unknown format %q", source, *cfg.Format)
	}
	cfg.Source = source
	log.Debugf("using config file: %s", source)
	return cfg, nil
}

// Apply copies the comparison settings present in the file onto opts.
func (c *File) Apply(opts *xlsxdiff.Options) {
	if c == nil {
		return
	}
	if c.RowGap != nil {
		opts.RowGap = c.RowGap
	}
	if c.ColumnGap != nil {
		opts.ColumnGap = c.ColumnGap
	}
	if c.MaxCells != nil {
		opts.MaxCells = c.MaxCells
	}
	if c.Workers != nil {
		opts.Workers = *c.Workers
	}
	if c.ReportColumnGaps != nil {
		opts.ReportColumnGaps = *c.ReportColumnGaps
	}
	if len(c.Sheets) > 0 {
		opts.Sheets = c.Sheets
	}
}
