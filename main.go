package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"CurveBoard/internal/editor"
	"CurveBoard/internal/state"
	"CurveBoard/internal/ui"
)

func main() {
	cfg, verbose, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	editor.SetLogger(logger)

	logger.Info("starting curve board", "degree", cfg.Degree, "tool", cfg.Tool, "continuity", cfg.Continuity)
	if err := ui.RunApp(cfg); err != nil {
		logger.Error("curve board failed", "err", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (editor.Config, bool, error) {
	cfg := editor.DefaultConfig()
	fs := flag.NewFlagSet("curveboard", flag.ContinueOnError)
	degree := fs.String("degree", cfg.Degree.String(), "curve type: quadratic or cubic")
	tool := fs.String("tool", cfg.Tool.String(), "initial tool: draw, color or delete")
	continuity := fs.String("continuity", cfg.Continuity.String(), "join mode: continuity-0, continuity-1 or continuity-2")
	color := fs.String("color", cfg.Color, "initial paint color as #rrggbb")
	verbose := fs.Bool("v", false, "log pointer events")
	if err := fs.Parse(args); err != nil {
		return cfg, false, err
	}

	var err error
	if cfg.Degree, err = state.ParseDegree(*degree); err != nil {
		return cfg, false, err
	}
	if cfg.Tool, err = editor.ParseTool(*tool); err != nil {
		return cfg, false, err
	}
	if cfg.Continuity, err = state.ParseContinuity(*continuity); err != nil {
		return cfg, false, err
	}
	cfg.Color = *color
	if err := cfg.Validate(); err != nil {
		return cfg, false, err
	}
	return cfg, *verbose, nil
}
