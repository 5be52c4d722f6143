package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	var templatesPath string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List registered diagram types",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadTemplates(templatesPath)
			if err != nil {
				return err
			}
			for _, name := range registry.Types() {
				t := registry.TemplateFor(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s rankdir=%-3s routing=%-8s shape=%gx%g\n",
					name, t.Layout.Rankdir, t.Layout.EdgeRouting, t.Shape.Width, t.Shape.Height)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templatesPath, "templates", "", "TOML file with template overrides")
	return cmd
}
