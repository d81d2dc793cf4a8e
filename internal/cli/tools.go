package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/ada/internal/config"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.DefaultPaths()
		if err != nil {
			return err
		}
		cfg, err := config.Load(paths.Config)
		if err != nil {
			return err
		}

		registry := newRegistry(cfg)
		PrintHeader("Registered tools")
		for _, name := range registry.Names() {
			if t, ok := registry.Get(name); ok {
				PrintLabelValue(name, t.Description())
			}
		}
		return nil
	},
}
