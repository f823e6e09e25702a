package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"git.sr.ht/~mango/logo/canvas"
	"git.sr.ht/~mango/logo/log"
	"git.sr.ht/~mango/logo/parser"
	"git.sr.ht/~mango/logo/vm"
	"git.sr.ht/~sircmpwn/getopt"
	"gopkg.in/yaml.v3"
)

const usage = "Usage: logo [-ant] script image height width"

type usageError struct {
	err error // Why the arguments were rejected, if known
}

func (e usageError) Error() string {
	if e.err == nil {
		return usage
	}
	return e.err.Error()
}

type config struct {
	dumpAST   bool // -a
	parseOnly bool // -n
	trace     bool // -t

	script, image string
	height, width int
}

func main() {
	err := run(os.Args, os.Stdout)

	var ue usageError
	switch {
	case err == nil:
	case errors.As(err, &ue):
		if ue.err != nil {
			log.Err("%s", ue.err)
		}
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	default:
		log.CrashOnError = true
		log.Err("%s", err)
	}
}

func parseArgs(args []string) (config, error) {
	var cfg config

	opts, optind, err := getopt.Getopts(args, "ant")
	if err != nil {
		return cfg, usageError{err}
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'a':
			cfg.dumpAST = true
		case 'n':
			cfg.parseOnly = true
		case 't':
			cfg.trace = true
		}
	}

	rest := args[optind:]
	if len(rest) != 4 {
		return cfg, usageError{}
	}
	cfg.script, cfg.image = rest[0], rest[1]

	if cfg.height, err = dimension("height", rest[2]); err != nil {
		return cfg, err
	}
	if cfg.width, err = dimension("width", rest[3]); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func dimension(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, usageError{fmt.Errorf("invalid %s ‘%s’: must be a positive integer", what, s)}
	}
	return n, nil
}

// run is main without the exiting, so that it can be tested.
func run(args []string, stdout io.Writer) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	log.Trace = cfg.trace

	// Fail on a bad extension before doing any work
	if !cfg.parseOnly {
		if _, err := canvas.FormatOf(cfg.image); err != nil {
			return err
		}
	}

	src, err := os.ReadFile(cfg.script)
	if err != nil {
		return err
	}

	prog, err := parser.Parse(string(src))
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.script, err)
	}

	if cfg.dumpAST {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(prog); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}
	if cfg.parseOnly {
		return nil
	}

	img := canvas.New(cfg.width, cfg.height)
	if err := vm.New(img).Run(prog); err != nil {
		return fmt.Errorf("%s: %w", cfg.script, err)
	}
	return img.Save(cfg.image)
}
