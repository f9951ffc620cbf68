package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cloneName   string
	clonePath   string
	cloneLayout string
)

var cloneCmd = &cobra.Command{
	Use:     "clone <url> [-- <git clone args>]",
	Aliases: []string{"cl"},
	Short:   "Clone a repository and connect to a session inside it",
	Long: `Clone url under --path (default: the configured clone path, else the
working directory), then create and attach a session in the fresh checkout.
Arguments after -- are passed to git clone verbatim.`,
	Args: func(cmd *cobra.Command, args []string) error {
		n := len(args)
		if at := cmd.ArgsLenAtDash(); at >= 0 {
			n = at
		}
		if n != 1 {
			return fmt.Errorf("expected exactly one repository url, got %d", n)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		url := args[0]
		var extra []string
		if at := cmd.ArgsLenAtDash(); at >= 0 {
			extra = args[at:]
		}

		parent := clonePath
		if parent == "" {
			parent = app.cfg.ClonePath
		}

		_, err = app.engine.CloneAndConnect(context.Background(), url, parent, cloneName, extra, app.sessionOptions(cloneLayout))
		return err
	},
}

func init() {
	cloneCmd.Flags().StringVarP(&cloneName, "name", "n", "", "session name override")
	cloneCmd.Flags().StringVarP(&clonePath, "path", "p", "", "parent directory for the clone")
	cloneCmd.Flags().StringVarP(&cloneLayout, "layout", "l", "", "zellij layout for the new session")
	rootCmd.AddCommand(cloneCmd)
}
