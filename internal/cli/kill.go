package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var killCmd = &cobra.Command{
	Use:     "kill <name>",
	Aliases: []string{"k"},
	Short:   "Kill a session and drop its recorded root",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.CommandTimeout)
		defer cancel()

		return app.engine.Kill(ctx, args[0])
	},
}

func init() {
	rootCmd.AddCommand(killCmd)
}
