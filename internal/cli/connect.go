package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var connectLayout string

var connectCmd = &cobra.Command{
	Use:     "connect <target>",
	Aliases: []string{"cn"},
	Short:   "Attach to a session, creating one from a directory if needed",
	Long: `Resolve target and attach. Resolution order: an exactly matching live
session, an existing directory path, then a zoxide history query. When the
match is a directory, a session named after its repository is created there.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		_, err = app.engine.Connect(context.Background(), args[0], app.sessionOptions(connectLayout))
		return err
	},
}

func init() {
	connectCmd.Flags().StringVarP(&connectLayout, "layout", "l", "", "zellij layout for newly created sessions")
	rootCmd.AddCommand(connectCmd)
}
