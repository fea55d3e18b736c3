package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/zjrosen/pgtail/internal/app"
	"github.com/zjrosen/pgtail/internal/highlight"
)

var (
	listCategory string
	addStyle     string
	addPriority  int
	skipPersist  bool
)

var highlightersCmd = &cobra.Command{
	Use:     "highlighters",
	Aliases: []string{"hl"},
	Short:   "Inspect and configure highlighters",
	Long: `Inspect and configure the semantic highlighters.

Changes made by enable, disable, add, remove, threshold, reset and import are
written back to the highlighting section of the config file.`,
}

var highlightersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List highlighters in execution order",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if listCategory != "" && !slices.Contains(highlight.Categories(), highlight.Category(listCategory)) {
			return fmt.Errorf("unknown category %q", listCategory)
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("NAME", "CATEGORY", "PRIORITY", "ENABLED", "DESCRIPTION")
		for _, info := range a.Registry().List() {
			if listCategory != "" && string(info.Category) != listCategory {
				continue
			}
			desc := info.Description
			if info.Custom {
				desc = fmt.Sprintf("%s (style %s)", info.Pattern, info.Style)
			}
			t.Row(info.Name, string(info.Category), strconv.Itoa(info.Priority), yesNo(info.Enabled), desc)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

var highlightersEnableCmd = &cobra.Command{
	Use:   "enable <name>...",
	Short: "Enable highlighters",
	Args:  cobra.MinimumNArgs(1),
	RunE: mutate(func(a *app.App, args []string) error {
		for _, name := range args {
			if err := a.Registry().Enable(name); err != nil {
				return err
			}
		}
		return nil
	}),
}

var highlightersDisableCmd = &cobra.Command{
	Use:   "disable <name>...",
	Short: "Disable highlighters",
	Args:  cobra.MinimumNArgs(1),
	RunE: mutate(func(a *app.App, args []string) error {
		for _, name := range args {
			if err := a.Registry().Disable(name); err != nil {
				return err
			}
		}
		return nil
	}),
}

var highlightersAddCmd = &cobra.Command{
	Use:   "add <name> <pattern>",
	Short: "Add a custom highlighter",
	Long: `Add a custom highlighter. Patterns support lookaround and backreferences.

Example:
  pgtail highlighters add tenant 'tenant=\w+' --style custom.tenant`,
	Args: cobra.ExactArgs(2),
	RunE: mutate(func(a *app.App, args []string) error {
		return a.Registry().AddCustom(highlight.CustomDefinition{
			Name:     args[0],
			Pattern:  args[1],
			Style:    addStyle,
			Priority: addPriority,
		})
	}),
}

var highlightersRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a custom highlighter",
	Args:  cobra.ExactArgs(1),
	RunE: mutate(func(a *app.App, args []string) error {
		return a.Registry().RemoveCustom(args[0])
	}),
}

var highlightersThresholdCmd = &cobra.Command{
	Use:   "threshold [<kind> <value>]",
	Short: "Show or set severity thresholds",
	Long: `Show all thresholds, or set one. Durations are in milliseconds, sizes in bytes.

Kinds: duration.warning, duration.slow, duration.critical, size.warning, size.critical`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or <kind> <value>")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()
			for _, kind := range highlight.ThresholdKinds() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-18s %g\n", kind, a.Registry().Threshold(kind))
			}
			return nil
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		return mutate(func(a *app.App, _ []string) error {
			return a.Registry().SetThreshold(highlight.ThresholdKind(args[0]), value)
		})(cmd, args)
	},
}

var highlightersResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default highlighting settings",
	RunE: mutate(func(a *app.App, _ []string) error {
		a.Registry().ResetToDefaults()
		return nil
	}),
}

var highlightersExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export highlighting settings (.yaml, .yml or .toml)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.Export(args[0]); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", args[0])
		return nil
	},
}

var highlightersImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace highlighting settings from an exported file",
	Args:  cobra.ExactArgs(1),
	RunE: mutate(func(a *app.App, args []string) error {
		return a.Import(args[0])
	}),
}

// mutate runs fn against a fresh app and persists the result unless
// --no-save was given.
func mutate(fn func(a *app.App, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := fn(a, args); err != nil {
			return err
		}
		if skipPersist {
			return nil
		}
		if err := a.Persist(); err != nil {
			return fmt.Errorf("saving %s: %w", a.ConfigPath(), err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", a.ConfigPath())
		return nil
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	highlightersListCmd.Flags().StringVar(&listCategory, "category", "", "only list one category")
	highlightersAddCmd.Flags().StringVar(&addStyle, "style", highlight.StyleCustom, "style key for matches")
	highlightersAddCmd.Flags().IntVar(&addPriority, "priority", highlight.DefaultCustomPriority, "lower runs first")
	highlightersCmd.PersistentFlags().BoolVar(&skipPersist, "no-save", false, "apply without writing the config file")

	highlightersCmd.AddCommand(
		highlightersListCmd,
		highlightersEnableCmd,
		highlightersDisableCmd,
		highlightersAddCmd,
		highlightersRemoveCmd,
		highlightersThresholdCmd,
		highlightersResetCmd,
		highlightersExportCmd,
		highlightersImportCmd,
	)
	rootCmd.AddCommand(highlightersCmd)
}
