package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rootDirCmd = &cobra.Command{
	Use:     "root",
	Aliases: []string{"r"},
	Short:   "Print the root directory of the current session",
	Long: `Print the directory the current session was created from, falling back
to the enclosing git repository of the working directory. Intended for
shell substitution: cd "$(zsesh root)".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.CommandTimeout)
		defer cancel()

		root, err := app.engine.ResolveRoot(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), root)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rootDirCmd)
}
