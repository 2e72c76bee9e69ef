package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
	"github.com/alexisbeaulieu97/widgetkit/pkg/diff"
)

func newThemeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and validate theme files",
	}

	cmd.AddCommand(newThemeShowCmd(root))
	cmd.AddCommand(newThemeValidateCmd())
	cmd.AddCommand(newThemeDiffCmd())

	return cmd
}

func newThemeShowCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show [builtin]",
		Short: "Print the resolved theme as YAML",
		Long: `Show prints the theme selected by --theme, or the named built-in theme
(default or dark), after all overrides are applied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := resolveShownTheme(root, args)
			if err != nil {
				return err
			}

			return writeThemeYAML(cmd.OutOrStdout(), theme)
		},
	}
}

func resolveShownTheme(root *rootFlags, args []string) (components.Theme, error) {
	if len(args) == 1 {
		if root.themePath != "" {
			return components.Theme{}, newCommandError("show theme", "choosing a theme", errors.New("both --theme and a built-in name were given"), "Pass one or the other.")
		}
		theme, ok := components.ThemeByName(args[0])
		if !ok {
			return components.Theme{}, newCommandError("show theme", fmt.Sprintf("looking up %q", args[0]), errors.New("no such built-in theme"), "Use default or dark.")
		}
		return theme, nil
	}

	theme, err := root.theme()
	if err != nil {
		return components.Theme{}, newCommandError("show theme", "loading "+root.themePath, err, "Run 'widgetkit theme validate' on the file for details.")
	}
	return theme, nil
}

func newThemeValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a theme file for syntax and schema errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.LoadTheme(args[0]); err != nil {
				return newCommandError("validate theme", args[0], err, "")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}
}

func writeThemeYAML(w io.Writer, theme components.Theme) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(config.Describe(theme)); err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return enc.Close()
}

func newThemeDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <theme> <theme>",
		Short: "Compare two resolved themes",
		Long: `Diff resolves two themes, each a theme file or a built-in name, and prints
a line diff of their YAML form.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := make([]string, 2)
			for i, arg := range args {
				theme, err := loadThemeArg(arg)
				if err != nil {
					return newCommandError("diff themes", "loading "+arg, err, "")
				}
				var buf bytes.Buffer
				if err := writeThemeYAML(&buf, theme); err != nil {
					return err
				}
				texts[i] = buf.String()
			}

			out := diff.Lines(texts[0], texts[1], args[0], args[1])
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "themes are identical")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// loadThemeArg prefers an existing file and falls back to a built-in name.
func loadThemeArg(arg string) (components.Theme, error) {
	if _, err := os.Stat(arg); err == nil {
		doc, err := config.LoadTheme(arg)
		if err != nil {
			return components.Theme{}, err
		}
		return doc.Resolve(), nil
	}
	if theme, ok := components.ThemeByName(arg); ok {
		return theme, nil
	}
	return components.Theme{}, fmt.Errorf("%q is neither a theme file nor a built-in theme", arg)
}
