// Package commands implements the convertia command line.
package commands

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yanqian/convertia/internal/domain/conversion"
	"github.com/yanqian/convertia/pkg/logger"
)

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

type options struct {
	logLevel string
	noColor  bool
	locale   string

	logger *slog.Logger
	svc    conversion.Service
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "convertia",
		Short:         "Convert values between temperature, length, time and volume units",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			opts.logger = logger.NewWithWriter(cmd.ErrOrStderr(), opts.logLevel)
			opts.svc = conversion.NewService(conversion.Config{DefaultLocale: opts.locale}, nil, opts.logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVarP(&opts.locale, "locale", "l", envOr("CONVERSION_DEFAULT_LOCALE", conversion.DefaultLocale), "locale used to format numbers")

	root.AddCommand(convertCmd(opts), unitsCmd(opts), categoriesCmd(opts))
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func bold(format string, a ...any) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
