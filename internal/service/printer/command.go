package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/project-template/internal/config"
	"github.com/oshokin/project-template/internal/console"
	"github.com/oshokin/project-template/internal/logger"
)

// Options configures the colored text printer.
type Options struct {
	// ConfigPath is the optional configuration file; empty means no configuration.
	ConfigPath string
	// Text is printed as is; empty prints the default greeting.
	Text string
	// Color is a style such as "red", "bold rgb(10,20,30)"; empty picks a random color.
	Color string
	// Output receives the text, defaults to stdout.
	Output io.Writer
}

// Run loads the configuration, applies its log level and prints the text.
func Run(ctx context.Context, opts *Options) error {
	store, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	tier := logger.FromContext(ctx).Apply(store)

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "scaffold")

	logger.Debugf(ctx, "Loaded %d configuration attributes from %q, log level %s", store.Len(), store.Path(), tier)

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	if err = console.New(output).Print(opts.Text, opts.Color); err != nil {
		logger.Errorf(ctx, "Unable to print text: %v", err)

		return fmt.Errorf("print text: %w", err)
	}

	logger.Info(ctx, "Text printed")

	return nil
}
