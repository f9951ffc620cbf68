package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var lastLayout string

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Reconnect to the most recently used session",
	Long: `Attach to the most recent session other than the current one. A dead
session whose root directory is still known is recreated there under its
old name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		_, err = app.engine.Last(context.Background(), app.sessionOptions(lastLayout))
		return err
	},
}

func init() {
	lastCmd.Flags().StringVarP(&lastLayout, "layout", "l", "", "zellij layout when the session must be recreated")
	rootCmd.AddCommand(lastCmd)
}
