package updater

import (
	"context"
	"errors"
	"strings"

	"github.com/oshokin/project-template/internal/config"
	"github.com/oshokin/project-template/internal/logger"
	"github.com/oshokin/project-template/internal/manifest"
)

// ErrNothingToUpdate is returned when no manifest field was provided.
var ErrNothingToUpdate = errors.New("at least one manifest field must be provided")

// Options are inputs accepted by the updater entry point.
type Options struct {
	// ConfigPath is the optional configuration file providing log_level.
	ConfigPath string
	// ManifestPath is the manifest to patch; defaults to manifest.DefaultFilename.
	ManifestPath string
	// Fields are the values to write; empty fields are left untouched.
	Fields manifest.Fields
}

// Run patches the manifest fields and is the public entry point for the CLI.
func Run(ctx context.Context, opts *Options) error {
	if opts == nil || opts.Fields.IsZero() {
		return ErrNothingToUpdate
	}

	store, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Apply(store)

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "manifest-updater")

	path := opts.ManifestPath
	if path == "" {
		path = manifest.DefaultFilename
	}

	changed, err := manifest.Update(ctx, path, opts.Fields)
	if err != nil {
		logger.Errorf(ctx, "Manifest update failed: %v", err)

		return err
	}

	if len(changed) > 0 {
		logger.Infof(ctx, "Updated %s in %s", strings.Join(changed, ", "), path)
	}

	return nil
}
