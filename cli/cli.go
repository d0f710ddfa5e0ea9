// Package cli provides the flags shared by the frontends.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"go.creack.net/triangle/render"
)

// Settings are the values bound by NewFlagSet.
type Settings struct {
	ConfigFile string
	Verbose    bool
	Lenient    bool

	Width    int
	Height   int
	Title    string
	Platform string

	fs *flag.FlagSet
}

// NewFlagSet returns a flag set bound to a new Settings.
// Frontends may register their own flags on it before parsing.
func NewFlagSet(name string) (*flag.FlagSet, *Settings) {
	def := render.DefaultConfig()
	s := &Settings{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&s.ConfigFile, "config", "", "YAML file overriding the default scene")
	fs.IntVar(&s.Width, "width", def.Width, "initial window width")
	fs.IntVar(&s.Height, "height", def.Height, "initial window height")
	fs.StringVar(&s.Title, "title", def.Title, "window title")
	fs.StringVar(&s.Platform, "platform", def.Platform, "preferred display server")
	fs.BoolVar(&s.Lenient, "lenient", false, "log shader compile and link failures instead of exiting")
	fs.BoolVar(&s.Verbose, "v", false, "debug logging")
	s.fs = fs
	return fs, s
}

// Config builds the scene config: defaults, then the config file, then the
// flags explicitly set on the command line.
func (s *Settings) Config() (render.Config, error) {
	cfg := render.DefaultConfig()
	if s.ConfigFile != "" {
		if err := render.LoadConfigFile(s.ConfigFile, &cfg); err != nil {
			return render.Config{}, err
		}
	}
	s.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = s.Width
		case "height":
			cfg.Height = s.Height
		case "title":
			cfg.Title = s.Title
		case "platform":
			cfg.Platform = s.Platform
		case "lenient":
			cfg.Strict = !s.Lenient
		}
	})
	if err := cfg.Validate(); err != nil {
		return render.Config{}, err
	}
	return cfg, nil
}

// Logger returns a plain text logger writing to w, at debug level with -v.
func (s *Settings) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if s.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseConfig parses args, without the program name, and builds the config.
func ParseConfig(fs *flag.FlagSet, s *Settings, args []string) (render.Config, error) {
	if err := fs.Parse(args); err != nil {
		return render.Config{}, fmt.Errorf("parse: %w", err)
	}
	if fs.NArg() > 0 {
		return render.Config{}, fmt.Errorf("parse: unexpected argument %q", fs.Arg(0))
	}
	cfg, err := s.Config()
	if err != nil {
		return render.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
