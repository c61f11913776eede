package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"avl/internal/query"
)

// logLevelEnv overrides the default of -log-level.
const logLevelEnv = "AVL_LOG_LEVEL"

// config holds the parsed command line.
type config struct {
	engine   string
	timing   bool
	compare  bool
	dotFile  string
	logLevel zapcore.Level
	input    string // empty reads stdin
}

// parseConfig parses args (without the program name).
func parseConfig(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{logLevel: zapcore.WarnLevel}
	if env := os.Getenv(logLevelEnv); env != "" {
		if err := cfg.logLevel.UnmarshalText([]byte(env)); err != nil {
			return nil, fmt.Errorf("%s: %w", logLevelEnv, err)
		}
	}

	fs := flag.NewFlagSet("avlquery", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: avlquery [flags] [file]")
		fmt.Fprintln(stderr, "Answers 'k <key>' and 'q <low> <high>' queries read from file or stdin.")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.engine, "engine", "avl", "container engine: "+strings.Join(engineNames(), ", "))
	fs.BoolVar(&cfg.timing, "time", false, "print elapsed milliseconds instead of answers")
	fs.BoolVar(&cfg.compare, "compare", false, "check every answer against the btree engine")
	fs.StringVar(&cfg.dotFile, "dot", "", "write the final AVL tree as Graphviz DOT to `file`")
	fs.Var(&cfg.logLevel, "log-level", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.input = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	if _, ok := query.Engines[cfg.engine]; !ok {
		return nil, fmt.Errorf("unknown engine %q", cfg.engine)
	}
	if cfg.dotFile != "" && cfg.engine != "avl" {
		return nil, fmt.Errorf("-dot needs the avl engine")
	}
	return cfg, nil
}

// engineNames returns the sorted names of query.Engines.
func engineNames() []string {
	names := make([]string, 0, len(query.Engines))
	for name := range query.Engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newLogger builds a console logger writing to stderr at level.
func newLogger(level zapcore.Level, stderr io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(stderr)),
		level,
	)
	return zap.New(core)
}
