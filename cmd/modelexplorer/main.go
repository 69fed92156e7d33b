// Command modelexplorer loads a model file and either shows it in a window, dumps its
// resolved geometries, or checks that it parses.
//
//	modelexplorer [-config FILE] [-log-level LEVEL] [-log-file FILE] view|inspect|check MODEL_FILE
//	modelexplorer [-config FILE] [-log-level LEVEL] init [-force]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"mjcf-parser/internal/commands"
	"mjcf-parser/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit status: 0 on success, 1 when the command fails and
// 2 on a usage error.
func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("modelexplorer", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", config.DefaultPath, "YAML settings file")
	logLevel := global.String("log-level", "", "diagnostic level: debug, warn or error")
	logFile := global.String("log-file", "", "also append diagnostics to this file")
	if err := global.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "modelexplorer:", err)
		return 1
	}
	if err := config.Overlay(&cfg, config.Config{LogLevel: *logLevel, LogFile: *logFile}); err != nil {
		fmt.Fprintln(stderr, "modelexplorer:", err)
		return 1
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, "modelexplorer:", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	a := newApp(cfg, *configPath, logger, stdout)
	reg := a.commands(stderr)
	if err := reg.Execute(global.Args()); err != nil {
		switch {
		case errors.Is(err, commands.ErrUsage), errors.Is(err, flag.ErrHelp):
			usage(stderr, reg)
			return 2
		}
		fmt.Fprintln(stderr, "modelexplorer:", err)
		return 1
	}
	return 0
}

func usage(w io.Writer, reg *commands.Registry) {
	fmt.Fprintln(w, "usage: modelexplorer [-config FILE] [-log-level LEVEL] [-log-file FILE] COMMAND [MODEL_FILE]")
	for _, name := range reg.Names() {
		c, _ := reg.Lookup(name)
		fmt.Fprintf(w, "  %-8s %s\n", name, c.Summary)
	}
}
