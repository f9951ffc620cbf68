package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zsesh/zsesh/internal/engine"
	"github.com/zsesh/zsesh/internal/model"
)

var (
	listAll      bool
	listSessions bool
	listDirs     bool
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l", "ls"},
	Short:   "List sessions and directory history as one deduplicated view",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.CommandTimeout)
		defer cancel()

		filter := engine.ListFilter{SessionsOnly: listSessions, DirsOnly: listDirs}
		if listAll {
			filter = engine.ListFilter{}
		}
		entries, err := app.engine.List(ctx, filter)
		if err != nil {
			return err
		}

		if listJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		return printEntries(cmd, entries)
	},
}

func printEntries(cmd *cobra.Command, entries []model.ListEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	for _, e := range entries {
		marker := " "
		if e.IsCurrent {
			marker = "*"
		}
		display := e.Display
		if display == "" {
			display = e.Path
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\n", marker, e.Name, e.Source, display)
	}
	return w.Flush()
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "both sources (the default)")
	listCmd.Flags().BoolVarP(&listSessions, "sessions", "s", false, "only live sessions")
	listCmd.Flags().BoolVarP(&listDirs, "dirs", "d", false, "only directory history")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "emit JSON")
	listCmd.MarkFlagsMutuallyExclusive("sessions", "dirs")
	rootCmd.AddCommand(listCmd)
}
