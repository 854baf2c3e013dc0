package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/project-template/internal/logger"
	"github.com/oshokin/project-template/internal/manifest"
	"github.com/oshokin/project-template/internal/service/updater"
	"github.com/oshokin/project-template/internal/version"
)

var (
	// manifestPath is the manifest file to patch.
	manifestPath string
	// configPath to the configuration file; empty means no configuration.
	configPath string
	// fields collects the values provided on the command line.
	fields manifest.Fields

	// rootCmd represents the base command for patching the manifest.
	rootCmd = &cobra.Command{
		Use:   "manifest-updater",
		Short: "Update project fields of the manifest.",
		Long: `Overwrites the name, version, description, repository and license of the project
stored under tool.project in the manifest. Fields that are not given are left untouched.
Comments, key order and quoting of the rest of the manifest are kept.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fields.IsZero() {
				cmd.SetOut(cmd.ErrOrStderr())
				_ = cmd.Usage()

				return updater.ErrNothingToUpdate
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			ctx = logger.ToContext(ctx, logger.Default())

			return updater.Run(ctx, &updater.Options{
				ConfigPath:   configPath,
				ManifestPath: manifestPath,
				Fields:       fields,
			})
		},
	}
)

// Execute runs the manifest-updater CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		// A bare invocation has already printed the usage.
		if !errors.Is(err, updater.ErrNothingToUpdate) {
			rootCmd.PrintErrln("Error:", err)
		}

		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVar(&fields.Name, "name", "", "the name of the project")
	rootCmd.Flags().StringVar(&fields.Version, "ver", "", "the version of the project")
	rootCmd.Flags().StringVar(&fields.Description, "desc", "", "a short description of the project")
	rootCmd.Flags().StringVar(&fields.Repository, "repo", "", "the URL of the project's repository")
	rootCmd.Flags().StringVar(&fields.License, "lic", "", "the license of the project")
	rootCmd.Flags().StringVarP(&manifestPath, "file", "f", manifest.DefaultFilename, "path to the manifest file")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to configuration file")
}
