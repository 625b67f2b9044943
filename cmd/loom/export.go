package main

import (
	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/pkg/deploy"
	"github.com/loom-ui/loom/pkg/showcase"
)

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the showcase as static HTML",
		Long: `Render the showcase once and write it to disk.

The export is a snapshot: signals are rendered at their initial values
and events are inert.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "Output directory")

	return cmd
}

func runExport(out string) error {
	path, err := deploy.Export(deploy.ExportConfig{
		Dir:   out,
		Title: "Loom examples",
		CSS:   showcase.CSS,
	}, showcase.App)
	if err != nil {
		return err
	}
	success("exported %s", path)
	return nil
}
