package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pgtail/internal/pgsql"
)

var detectCmd = &cobra.Command{
	Use:   "detect <message>",
	Short: "Show which part of a log message is SQL",
	Long: `Split a log message into prefix, SQL and suffix using the same rules the
SQL highlighter applies.

Example:
  pgtail detect 'duration: 12.3 ms  statement: SELECT * FROM users'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")
		out := cmd.OutOrStdout()

		content, rule, ok := pgsql.DetectWithRule(message)
		if !ok {
			_, _ = fmt.Fprintln(out, "no SQL detected")
			return nil
		}
		_, _ = fmt.Fprintf(out, "rule:   %s\n", rule)
		_, _ = fmt.Fprintf(out, "prefix: %q\n", content.Prefix)
		_, _ = fmt.Fprintf(out, "sql:    %q\n", content.SQL)
		_, _ = fmt.Fprintf(out, "suffix: %q\n", content.Suffix)
		_, _ = fmt.Fprintf(out, "offset: %d\n", content.SQLStart())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
