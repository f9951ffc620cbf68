package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:     "preview <target>",
	Aliases: []string{"p"},
	Short:   "Show what a target resolves to without connecting",
	Long: `Resolve target exactly like connect would, read-only. A session match
prints the session and its recorded root; a directory match prints the
path and its contents. Useful as an fzf preview command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.CommandTimeout)
		defer cancel()

		p, err := app.engine.PreviewTarget(ctx, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if p.Session != nil {
			current := ""
			if p.Session.IsCurrent {
				current = " (current)"
			}
			fmt.Fprintf(out, "session: %s%s\n", p.Session.Name, current)
			if p.Path != "" {
				fmt.Fprintf(out, "root: %s\n", p.Path)
			}
			return nil
		}

		via := ""
		if p.ViaQuery {
			via = " (history match)"
		}
		fmt.Fprintf(out, "directory: %s%s\n", p.Path, via)
		return listDirContents(cmd, p.Path)
	},
}

func listDirContents(cmd *cobra.Command, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += string(filepath.Separator)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
