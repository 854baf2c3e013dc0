package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/project-template/internal/manifest"
)

// AttachCobraVersionCommand attaches a `version` subcommand to the provided root command.
// It prints detailed build info and, when a manifest is present in the working
// directory, the project version recorded there.
func AttachCobraVersionCommand(root *cobra.Command) {
	// Subcommand: `version`.
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long:  "Print detailed version information including build metadata, commit hash, and build timestamp. This information is automatically injected during the build process from Git tags and repository state.",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Full())

			doc, err := manifest.Load(manifest.DefaultFilename)
			if err != nil {
				return
			}

			project := Describe(doc)
			if project.Version != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s, manifest version: %s\n", project.Title, project.Version)
			}
		},
	})
}
