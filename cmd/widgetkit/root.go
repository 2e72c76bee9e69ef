package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/logger"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
)

type rootFlags struct {
	verbose   bool
	themePath string
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "widgetkit",
		Short:         "widgetkit renders and exercises headless UI widget state",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.logFormat {
			case "console", "json":
				return nil
			default:
				return fmt.Errorf("invalid --log-format %q: want console or json", flags.logFormat)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Theme file (YAML or TOML) applied to rendered widgets")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newPagesCmd())
	cmd.AddCommand(newRangeCmd())
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newCatalogCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger. Logs go to stderr so stdout stays
// parseable.
func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	return f.loggerTo(cmd, cmd.ErrOrStderr())
}

func (f *rootFlags) loggerTo(cmd *cobra.Command, w io.Writer) (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: f.logFormat != "json",
		Writer:        w,
		Component:     cmd.Name(),
	})
}

// theme resolves --theme, falling back to the default theme.
func (f *rootFlags) theme() (components.Theme, error) {
	if f.themePath == "" {
		return components.DefaultTheme(), nil
	}
	doc, err := config.LoadTheme(f.themePath)
	if err != nil {
		return components.Theme{}, err
	}
	return doc.Resolve(), nil
}
