// Package config loads the desktop command's settings from YAML.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/shapes"
	"github.com/go-theft-auto/shapes/assets"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config holds window and page settings. Zero Width and Height mean the
// canvas size declared in the page.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// Page is an HTML file with the canvas and shader scripts. Empty means
	// the embedded page.
	Page           string `yaml:"page"`
	Canvas         string `yaml:"canvas"`
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`

	ClearColor [4]float32 `yaml:"clear_color"`

	// Screenshot, when set, writes the drawn frame to this PNG and exits.
	Screenshot string `yaml:"screenshot"`
	Verbose    bool   `yaml:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:          "shapes",
		Canvas:         assets.Canvas,
		VertexShader:   shapes.DefaultVertexShaderID,
		FragmentShader: shapes.DefaultFragmentShaderID,
		ClearColor:     [4]float32{0.3, 0.0, 0.5, 1.0},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if (c.Width == 0) != (c.Height == 0) {
		return fmt.Errorf("%w: width and height must be set together", ErrInvalid)
	}
	if c.Canvas == "" {
		return fmt.Errorf("%w: canvas id is empty", ErrInvalid)
	}
	if c.VertexShader == "" || c.FragmentShader == "" {
		return fmt.Errorf("%w: shader ids must not be empty", ErrInvalid)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear_color[%d] = %v outside [0, 1]", ErrInvalid, i, v)
		}
	}
	return nil
}

// FromArgs parses command-line flags, loads the -config file if given and
// applies the remaining flags over it.
func FromArgs(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	page := fs.String("page", "", "HTML page with canvas and shader scripts (default: embedded)")
	screenshot := fs.String("screenshot", "", "write the drawn frame to this PNG and exit")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if *configPath != "" {
		var err error
		if cfg, err = Load(*configPath); err != nil {
			return Config{}, err
		}
	}

	if *page != "" {
		cfg.Page = *page
	}
	if *screenshot != "" {
		cfg.Screenshot = *screenshot
	}
	if *verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}
