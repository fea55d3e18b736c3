package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var followLines int

var followCmd = &cobra.Command{
	Use:   "follow <file>",
	Short: "Follow a log file, highlighting new lines",
	Long: `Print the end of a log file and keep printing lines as they are appended.
Truncation and rotation are handled. Stop with Ctrl+C.

The number of initial lines defaults to tail.lines from the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		backlog := cfg.Tail.Lines
		if cmd.Flags().Changed("lines") {
			backlog = followLines
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return a.Follow(ctx, cmd.OutOrStdout(), args[0], backlog)
	},
}

func init() {
	followCmd.Flags().IntVarP(&followLines, "lines", "n", 0, "initial lines to print")
	rootCmd.AddCommand(followCmd)
}
