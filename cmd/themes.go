package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pgtail/internal/highlight"
	"github.com/zjrosen/pgtail/internal/render"
	"github.com/zjrosen/pgtail/internal/theme"
)

const themeSample = `2024-03-01 12:00:01.234 UTC [4242] ERROR:  deadlock detected (SQLSTATE 40P01)
2024-03-01 12:00:02.001 UTC [4243] LOG:  duration: 812.4 ms  statement: SELECT id FROM "orders" WHERE total > 100`

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List theme presets with a sample",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := highlight.NewRegistry()
		out := cmd.OutOrStdout()
		for _, name := range theme.PresetNames() {
			th, err := theme.New(theme.Config{Preset: name})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "%s - %s\n", name, theme.Presets[name].Description)
			r := render.New(reg, th, render.WithCache(nil))
			for _, line := range strings.Split(themeSample, "\n") {
				_, _ = fmt.Fprintln(out, "  "+r.Render(line))
			}
			_, _ = fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
