package config

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"sparselife/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim string `json:"sim"`

	// Rows and Columns override the values derived from the window size.
	Rows    int `json:"rows"`
	Columns int `json:"columns"`

	Width    int `json:"width"`
	Height   int `json:"height"`
	CellSize int `json:"cell_size"`

	SeedDensity  float64 `json:"seed_density"`
	StartRunning bool    `json:"start_running"`
	FPSLimit     bool    `json:"fps_limit"`
	TPS          int     `json:"tps"`
	Seed         int64   `json:"seed"`
	LogStatus    bool    `json:"log_status"`

	File string `json:"-"`
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		Sim:         "life",
		Width:       800,
		Height:      600,
		CellSize:    10,
		SeedDensity: 0.15,
		FPSLimit:    true,
		TPS:         60,
		Seed:        42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, fullscan)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (0 derives from -height/-cell-size)")
	fs.IntVar(&c.Columns, "columns", c.Columns, "grid columns (0 derives from -width/-cell-size)")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "size of a cell in pixels")
	fs.Float64Var(&c.SeedDensity, "density", c.SeedDensity, "probability that a cell starts alive")
	fs.BoolVar(&c.StartRunning, "run", c.StartRunning, "start running without waiting for space")
	fs.BoolFunc("no-limit", "do not cap the generation rate while running", func(s string) error {
		unlimited, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		c.FPSLimit = !unlimited
		return nil
	})
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second when the rate is capped")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid reseeding")
	fs.BoolVar(&c.LogStatus, "log-status", c.LogStatus, "log a status line once per second")
	fs.StringVar(&c.File, "config", c.File, "JSON configuration file")
}

// Load decodes JSON over the defaults.
func Load(r io.Reader) (Config, error) {
	c := Default()
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return c, errors.Wrap(err, "[Load] failed to decode configuration")
	}
	return c, nil
}

// LoadFile loads configuration from a JSON file.
func LoadFile(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Default(), errors.Wrapf(err, "[LoadFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return c, errors.Wrapf(err, "[LoadFile] failed to load file: %+v", filename)
	}
	c.File = filename
	return c, nil
}

// Parse reads flags from args. When -config names a file, the file is loaded
// first and the flags are applied again on top of it, so the command line
// wins. The result is validated.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	c := Default()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.File != "" {
		fileCfg, err := LoadFile(c.File)
		if err != nil {
			return c, err
		}
		again := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
		again.SetOutput(io.Discard)
		fileCfg.Bind(again)
		if err := again.Parse(args); err != nil {
			return fileCfg, err
		}
		c = fileCfg
	}
	c = c.withDerivedGrid()
	return c, c.Validate()
}

func (c Config) withDerivedGrid() Config {
	if c.CellSize <= 0 {
		return c
	}
	if c.Rows == 0 {
		c.Rows = c.Height / c.CellSize
	}
	if c.Columns == 0 {
		c.Columns = c.Width / c.CellSize
	}
	return c
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.Rows <= 0:
		return errors.Errorf("rows must be positive, got %d", c.Rows)
	case c.Columns <= 0:
		return errors.Errorf("columns must be positive, got %d", c.Columns)
	case c.SeedDensity < 0 || c.SeedDensity > 1:
		return errors.Errorf("seed density must be within [0,1], got %v", c.SeedDensity)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// SimOptions returns the construction options for the selected simulation.
func (c Config) SimOptions() core.Options {
	return core.Options{Rows: c.Rows, Columns: c.Columns, Density: c.SeedDensity}
}
