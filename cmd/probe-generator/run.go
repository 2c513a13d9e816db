package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"probe-generator/internal/capture"
	"probe-generator/internal/decl"
	"probe-generator/internal/diagnostic"
	"probe-generator/internal/gen"
)

// ErrInputMissing is returned when the input header does not exist.
var ErrInputMissing = errors.New("input file does not exist")

// run generates every declaration of opts.Input into opts.Output and prints
// one line per file plus a summary to out.
func run(opts options, logger *zap.Logger, out io.Writer) error {
	info, err := os.Stat(opts.Input)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return fmt.Errorf("%w: %s", ErrInputMissing, opts.Input)
	}

	if err != nil {
		return fmt.Errorf("checking input file: %w", err)
	}

	table, err := loadTable(opts.Types, logger)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", opts.Input, err)
	}

	decls, bad := decl.Extract(string(data))

	if ce := logger.Check(zap.DebugLevel, "parsed declarations"); ce != nil {
		ce.Write(zap.Int("count", len(decls)), zap.String("dump", spew.Sdump(decls)))
	}

	diags := gen.Check(decls, bad, table, gen.CheckConfig{Strict: opts.Strict})
	logDiagnostics(logger, diags)

	if diags.HasErrors() {
		return fmt.Errorf("declarations rejected: %w", diags.Error())
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{Table: table, Logger: logger})

	files, err := generator.Generate(decls)
	if err != nil {
		return err
	}

	if opts.DryRun {
		for _, f := range files {
			fmt.Fprintf(out, "would generate: %s\n", filepath.Join(opts.Output, f.Filename))
		}

		fmt.Fprintf(out, "\nwould generate %d files into %s\n", len(files), opts.Output)

		return nil
	}

	err = gen.WriteFiles(files, opts.Output, func(path string) {
		fmt.Fprintf(out, "generated: %s\n", path)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\ngenerated %d files into %s\n", len(files), opts.Output)

	return nil
}

func loadTable(path string, logger *zap.Logger) (*capture.Table, error) {
	table := capture.DefaultTable()
	if path == "" {
		return table, nil
	}

	overrides, err := capture.LoadOverrides(path)
	if err != nil {
		return nil, err
	}

	logger.Info("loaded type overrides", zap.String("path", path), zap.Int("types", len(overrides)))

	table = table.With(overrides)
	logger.Debug("classification table", zap.Int("size", table.Len()), zap.Strings("types", table.Types()))

	return table, nil
}

func logDiagnostics(logger *zap.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		if d.Code == diagnostic.CodeUnclassifiedType {
			continue // the generator logs these with the chosen strategy
		}

		fields := []zap.Field{zap.String("code", d.Code)}
		if d.Declaration != "" {
			fields = append(fields, zap.String("declaration", d.Declaration))
		}

		if d.Param != "" {
			fields = append(fields, zap.String("param", d.Param))
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			logger.Error(d.Message, fields...)
		case diagnostic.DiagnosticWarning:
			logger.Warn(d.Message, fields...)
		default:
			logger.Debug(d.Message, fields...)
		}
	}
}
