// vecx is a CLI utility for evaluating vector operations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/vecext/internal/config"
	"github.com/Faultbox/vecext/internal/logger"
	"github.com/Faultbox/vecext/internal/query"
)

// errFailedQueries is returned by batch when stop_on_error is set and a query failed.
var errFailedQueries = errors.New("some queries failed")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.Format = cfg.Logging.FileFormat
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(cfg, args, os.Stdout); err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, out io.Writer) error {
	command := args[0]
	args = args[1:]

	logger.Debug("command", zap.String("name", command), zap.Strings("args", args))

	switch command {
	case "eval", "e":
		return cmdEval(cfg, args, out)
	case "batch", "b":
		return cmdBatch(cfg, args, out)
	case "ops":
		return cmdOps(out)
	case "config":
		return cmdConfig(cfg, args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `vecx - vector math utility

Usage:
  vecx [global options] <command> [options]

Commands:
  eval <op> <a> [b] [-t n] [-axis v] [-int]  Evaluate one operation
  batch <file.yaml>...                       Evaluate query files
  ops                                        List operations
  config show                                Print the effective config
  config init [path]                         Write the default config file
  help                                       Show this message

Global options:
  -config <path>    Config file
  -format <fmt>     Output format (text, yaml)
  -precision <n>    Digits after the decimal point
  -workers <n>      Query files evaluated concurrently
  -log <path>       Write logs to this file
  -debug            Enable debug logging

Vectors are written as 1,2 or (1, 2, 3). Wrap negative vectors in
parentheses, or pass them after --.

Examples:
  vecx eval shorter 1,2 3,4
  vecx eval direction-normalized 1,1 4,1
  vecx eval -t 0.25 lerp 0,0 10,20
  vecx eval -axis 0,0,1 signed-angle 1,0,0 0,1,0
  vecx -format yaml batch queries.yaml`)
}

func cmdEval(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	t := fs.Float64("t", 0, "Interpolation factor or maximum length")
	axis := fs.String("axis", "", "Rotation axis for 3D signed-angle")
	asInt := fs.Bool("int", false, "Evaluate on integer vectors")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}
	if len(positional) < 2 || len(positional) > 3 {
		return errors.New("usage: vecx eval <op> <a> [b] [-t n] [-axis v] [-int]")
	}

	q := query.Query{
		Op:  query.Op(positional[0]),
		T:   float32(*t),
		Int: *asInt,
	}
	if q.A, err = query.ParseVector(positional[1]); err != nil {
		return err
	}
	if len(positional) == 3 {
		if q.B, err = query.ParseVector(positional[2]); err != nil {
			return err
		}
	}
	if *axis != "" {
		if q.Axis, err = query.ParseVector(*axis); err != nil {
			return err
		}
	}

	res, err := query.Evaluate(q)
	if err != nil {
		return err
	}

	if cfg.Output.Format == config.FormatYAML {
		return writeYAML(out, res)
	}
	fmt.Fprintln(out, res.Format(cfg.Output.Precision))
	return nil
}

// parseInterleaved lets flags appear before, between or after positional
// arguments. Everything after "--" is positional.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var rest []string
	for i, a := range args {
		if a == "--" {
			rest = args[i+1:]
			args = args[:i]
			break
		}
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
	return append(positional, rest...), nil
}

func cmdBatch(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) < 1 {
		return errors.New("usage: vecx batch <file.yaml>...")
	}

	files, err := query.RunFiles(context.Background(), args, cfg.Batch.Workers)
	if err != nil {
		return err
	}

	failed := 0
	for _, f := range files {
		failed += f.Failed()
	}
	if failed > 0 {
		logger.Warn("queries failed", zap.Int("count", failed))
	}

	if cfg.Output.Format == config.FormatYAML {
		if err := writeYAML(out, files); err != nil {
			return err
		}
	} else {
		writeBatchText(out, files, cfg.Output.Precision)
	}

	if failed > 0 && cfg.Batch.StopOnError {
		return fmt.Errorf("%w: %d", errFailedQueries, failed)
	}
	return nil
}

func writeBatchText(w io.Writer, files []query.FileResult, precision int) {
	for i, f := range files {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if f.Name != "" {
			fmt.Fprintf(w, "# %s (%s)\n", f.Path, f.Name)
		} else {
			fmt.Fprintf(w, "# %s\n", f.Path)
		}
		for _, r := range f.Results {
			fmt.Fprintf(w, "%-22s %s\n", r.Op, r.Format(precision))
		}
	}
}

func cmdOps(out io.Writer) error {
	for _, op := range query.Ops() {
		fmt.Fprintf(out, "  %-22s %s\n", op, op.Summary())
	}
	return nil
}

func cmdConfig(cfg *config.Config, args []string, out io.Writer) error {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "init":
		def := config.Default()
		var (
			path string
			err  error
		)
		if len(args) > 1 {
			path = args[1]
			err = def.SaveTo(path)
		} else {
			path, err = def.Save()
		}
		if err != nil {
			return err
		}
		logger.Info("config written", zap.String("path", path))
		fmt.Fprintf(out, "Wrote %s\n", path)
		return nil
	default:
		return fmt.Errorf("unknown config command: %s (want show or init)", sub)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
