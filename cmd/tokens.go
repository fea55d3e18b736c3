package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/zjrosen/pgtail/internal/highlight"
	"github.com/zjrosen/pgtail/internal/pgsql"
)

var tokensAll bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <sql>",
	Short: "Show how a SQL statement is tokenized",
	Long: `Tokenize SQL and print each token with its kind, byte offsets and style key,
followed by the statement rendered with the active theme. Whitespace tokens are
hidden unless --all is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		sql := strings.Join(args, " ")
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("KIND", "START", "END", "TEXT", "STYLE")
		for _, ts := range highlight.HighlightSQL(sql) {
			if ts.Token.Kind == pgsql.KindWhitespace && !tokensAll {
				continue
			}
			t.Row(
				ts.Token.Kind.String(),
				strconv.Itoa(ts.Token.Start),
				strconv.Itoa(ts.Token.End),
				strconv.Quote(ts.Token.Text),
				ts.Style,
			)
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, t.Render())
		_, _ = fmt.Fprintln(out, a.Renderer().RenderSQL(sql))
		return nil
	},
}

func init() {
	tokensCmd.Flags().BoolVarP(&tokensAll, "all", "a", false, "include whitespace tokens")
	rootCmd.AddCommand(tokensCmd)
}
