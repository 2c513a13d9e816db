package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "PROBEGEN"

// options are the resolved command-line settings.
type options struct {
	Input  string
	Output string
	Types  string
	Strict bool
	DryRun bool
	Debug  bool
}

func newRootCommand() (*cobra.Command, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "probe-generator -i <syscalls_macro.h> -o <dir>",
		Short: "Generate eBPF syscall capture sources from a macro header",
		Long: `probe-generator reads SYSCALL_MACRO declarations and writes one
<number>-<name>.bpf.c file per syscall into the output directory.

Every flag can also be set through the environment, e.g. PROBEGEN_OUTPUT.

Examples:
  probe-generator -i include/linx_syscalls_macro.h -o kernel/ebpf/tail_calls
  probe-generator -i syscalls.h -o out --types types.yaml --strict
  probe-generator -i syscalls.h -o out --dry-run`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := optionsFrom(v)
			if err != nil {
				return err
			}

			logger, err := newLogger(opts.Debug)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(opts, logger, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "input header path (linx_syscalls_macro.h)")
	flags.StringP("output", "o", "", "output directory")
	flags.String("types", "", "YAML file with extra type classifications")
	flags.Bool("strict", false, "fail on duplicate syscall numbers instead of overwriting")
	flags.Bool("dry-run", false, "report the files that would be generated without writing them")
	flags.Bool("debug", false, "enable debug logging")

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	return cmd, nil
}

func optionsFrom(v *viper.Viper) (options, error) {
	opts := options{
		Input:  v.GetString("input"),
		Output: v.GetString("output"),
		Types:  v.GetString("types"),
		Strict: v.GetBool("strict"),
		DryRun: v.GetBool("dry-run"),
		Debug:  v.GetBool("debug"),
	}

	var missing []string
	if opts.Input == "" {
		missing = append(missing, `"input"`)
	}

	if opts.Output == "" {
		missing = append(missing, `"output"`)
	}

	if len(missing) > 0 {
		return opts, errors.New("required flag(s) " + strings.Join(missing, ", ") + " not set")
	}

	return opts, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	if debug {
		logConfig = zap.NewDevelopmentConfig()
	}

	return logConfig.Build()
}
