package version

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/project-template/internal/manifest"
)

// TestVersionStrings ensures Short and Full return non-empty consistent information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
	require.Contains(t, Full(), "commit "+Commit)
}

// TestDescribe reads the version from the manifest and falls back to the build version.
func TestDescribe(t *testing.T) {
	t.Parallel()

	doc, err := manifest.Parse([]byte("tool:\n  project:\n    version: 2.3.4\n"))
	require.NoError(t, err)

	project := Describe(doc)
	require.Equal(t, "2.3.4", project.Version)
	require.Equal(t, Title, project.Title)
	require.Equal(t, LicenseName, project.LicenseName)

	empty, err := manifest.Parse(nil)
	require.NoError(t, err)
	require.Empty(t, Describe(empty).Version)

	require.Equal(t, Version, Describe(nil).Version)
}

// TestVersionCommand prints build info and the manifest version from the working directory.
func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(manifest.DefaultFilename, []byte("tool:\n  project:\n    version: 7.0.0\n"), 0o600))

	var out bytes.Buffer

	root := &cobra.Command{Use: "root"}
	AttachCobraVersionCommand(root)
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), Full())
	require.Contains(t, out.String(), "manifest version: 7.0.0")
}
