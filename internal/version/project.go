package version

import "github.com/oshokin/project-template/internal/manifest"

const (
	// Title is the human-readable project title.
	Title = "project-template - Go project template"
	// Description is a short summary of the project.
	Description = "A template repository for Go projects with configuration loading, " +
		"leveled logging and a manifest updater."
	// ContactURL is where issues are reported.
	ContactURL = "https://github.com/oshokin/project-template/issues"
	// LicenseName is the project license.
	LicenseName = "MIT License"
	// LicenseURL points to the license text.
	LicenseURL = "https://github.com/oshokin/project-template/blob/main/LICENSE"
)

// Project describes the project for about screens and API metadata.
type Project struct {
	// Title is the project title.
	Title string
	// Description is a short summary of the project.
	Description string
	// Version is the project version read from the manifest.
	Version string
	// ContactURL is where issues are reported.
	ContactURL string
	// LicenseName is the project license.
	LicenseName string
	// LicenseURL points to the license text.
	LicenseURL string
}

// Describe returns project metadata. The version comes from the manifest and is
// empty when the manifest has none; a nil manifest falls back to the build version.
func Describe(doc *manifest.Document) Project {
	version := Version
	if doc != nil {
		version = doc.Field(manifest.KeyVersion)
	}

	return Project{
		Title:       Title,
		Description: Description,
		Version:     version,
		ContactURL:  ContactURL,
		LicenseName: LicenseName,
		LicenseURL:  LicenseURL,
	}
}
