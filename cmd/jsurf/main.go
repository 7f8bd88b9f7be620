// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jsurf validates, repairs, formats, and compares JSON documents.
//
// Usage:
//
//	jsurf validate [--strict] [--json] FILE
//	jsurf fix [--write] FILE
//	jsurf format [--write] FILE
//	jsurf tree [--at PATH] [--depth N] FILE
//	jsurf compare LEFT RIGHT
//
// A FILE of "-" reads standard input. The exit status is 1 if the input has
// problems that were not resolved, and 2 for usage errors.
//
// Settings are read from the file named by --config, or else from the first
// of .jsurf.yaml, .jsurf.yml, .jsurf.json, or .jsurf.jsonc found in the
// current directory or one of its parents.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jsurf/internal/config"
	"github.com/creachadair/jsurf/surf"
)

// errProblems is reported by a command whose input has unresolved problems.
// The command has already described them.
var errProblems = errors.New("problems found")

type cli struct {
	Config string `help:"Configuration file (default: search from the working directory)." type:"path"`
	Debug  bool   `help:"Enable debug logging." short:"d"`

	Validate validateCmd `cmd:"" help:"Report defects in a document."`
	Fix      fixCmd      `cmd:"" help:"Repair common defects in a document."`
	Format   formatCmd   `cmd:"" help:"Repair and pretty-print a document."`
	Tree     treeCmd     `cmd:"" help:"Print the structure of a document."`
	Compare  compareCmd  `cmd:"" help:"Compare the formatted lines of two documents."`
}

// env is the shared state passed to each command.
type env struct {
	svc    *surf.Service
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type exitCode int

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("jsurf"),
		kong.Description("Validate, repair, format, and compare JSON documents."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitCode(code)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "jsurf: %v\n", err)
		return 2
	}
	defer func() {
		if x := recover(); x != nil {
			ec, ok := x.(exitCode)
			if !ok {
				panic(x)
			}
			code = int(ec)
		}
	}()

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "jsurf: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(stderr, "jsurf: %v\n", err)
		return 2
	}
	level, _ := cfg.Level() // validated by loadConfig
	if c.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	e := &env{
		svc: surf.New(
			surf.WithIndent(cfg.Indent),
			surf.WithMaxIterations(cfg.MaxIterations),
			surf.WithCompareLimit(cfg.CompareLimit),
			surf.WithLogger(logger),
		),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	if err := ctx.Run(e); errors.Is(err, errProblems) {
		return 1
	} else if err != nil {
		fmt.Fprintf(stderr, "jsurf: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig loads the configuration at path, or the nearest configuration
// file if path == "", or the defaults if there is none.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.Find(".")
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// readInput returns the contents of the named file, or of stdin if name is "-".
func (e *env) readInput(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return surf.ReadFile(name)
}
