package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/pgtail/internal/tail"
)

var viewLines int

var viewCmd = &cobra.Command{
	Use:   "view [file...]",
	Short: "Print highlighted log lines",
	Long: `Print log files with semantic highlighting. Reads stdin when no file is given.

Examples:
  pgtail view /var/log/postgresql/postgresql-16-main.log
  pgtail view --lines 50 postgresql.log
  journalctl -u postgresql | pgtail view`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 0 {
			lines, err := tail.ReadFrom(cmd.InOrStdin(), viewLines)
			if err != nil {
				return err
			}
			return a.WriteLines(cmd.OutOrStdout(), lines)
		}

		for _, path := range args {
			lines, err := tail.Read(path, viewLines)
			if err != nil {
				return err
			}
			if err := a.WriteLines(cmd.OutOrStdout(), lines); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().IntVarP(&viewLines, "lines", "n", 0, "only print the last N lines (0 = all)")
	rootCmd.AddCommand(viewCmd)
}
