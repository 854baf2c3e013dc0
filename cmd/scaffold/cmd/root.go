package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/project-template/internal/logger"
	"github.com/oshokin/project-template/internal/service/printer"
	"github.com/oshokin/project-template/internal/version"
)

var (
	// configPath to the configuration file; empty means no configuration.
	configPath string
	// text to print.
	text string
	// color of the printed text.
	color string

	// rootCmd represents the base command for printing colored text.
	rootCmd = &cobra.Command{
		Use:   "scaffold",
		Short: "Prints any text in color.",
		Long: `Prints the given text in the given color.

Without text a greeting is printed; without color a random RGB color is picked.
Colors accept names (red, bright_cyan), ANSI indexes (0-255), #rrggbb and rgb(r,g,b),
optionally combined with attributes such as bold or italic and "on <color>" for the background.
The log level is read from the log_level attribute of the configuration file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			ctx = logger.ToContext(ctx, logger.Default())

			return printer.Run(ctx, &printer.Options{
				ConfigPath: configPath,
				Text:       text,
				Color:      color,
				Output:     cmd.OutOrStdout(),
			})
		},
	}
)

// Execute runs the scaffold CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&text, "text", "t", "", "the text to print")
	rootCmd.Flags().StringVarP(&color, "color", "c", "", "the color to print the text in")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to configuration file")
}
