package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/stewi1014/glgrid/config"
	"github.com/stewi1014/glgrid/programs"
)

func init() {
	// GLFW and GTK must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
	default:
		slog.Error("glgrid failed", "err", err)
		os.Exit(1)
	}
}

type settings struct {
	config config.Config
	level  slog.Level
	list   bool
}

func parseArgs(args []string, stderr io.Writer) (settings, error) {
	flags := pflag.NewFlagSet("glgrid", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "TOML configuration file")
	host := flags.String("host", "", "window host: glfw or gtk")
	program := flags.String("program", "", "shader program to draw with")
	width := flags.Int("width", 0, "window width")
	height := flags.Int("height", 0, "window height")
	debug := flags.Bool("debug", false, "log OpenGL debug output")
	list := flags.Bool("list", false, "list shader programs and exit")
	v := flags.BoolP("verbose", "v", false, "log info messages")
	vv := flags.Bool("vv", false, "log debug messages")
	q := flags.BoolP("quiet", "q", false, "only log errors")

	if err := flags.Parse(args); err != nil {
		return settings{}, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return settings{}, err
	}

	if flags.Changed("host") {
		cfg.Host = *host
	}
	if flags.Changed("program") {
		cfg.Program = *program
	}
	if flags.Changed("width") {
		cfg.Window.Width = *width
	}
	if flags.Changed("height") {
		cfg.Window.Height = *height
	}
	if flags.Changed("debug") {
		cfg.Debug = *debug
	}

	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	return settings{
		config: cfg,
		level:  levelFromFlags(*vv, *v, *q),
		list:   *list,
	}, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	s, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, s.level)
	slog.SetDefault(logger)

	if s.list {
		for _, name := range programs.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if _, err := programs.GetProgram(s.config.Program); err != nil {
		return err
	}

	logger.Info("starting", "host", s.config.Host, "program", s.config.Program)

	switch s.config.Host {
	case config.HostGTK:
		return runGTK(context.Background(), s.config, logger)
	default:
		return runGLFW(s.config, logger)
	}
}
