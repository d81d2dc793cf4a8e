package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/ada/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
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

		PrintHeader(fmt.Sprintf("Configuration (%s)", paths.Config))
		PrintLabelValue("model", cfg.Model)
		PrintLabelValue("max_tokens", strconv.Itoa(cfg.MaxTokens))
		PrintLabelValue("multi_turn_depth", strconv.Itoa(cfg.MultiTurnDepth))
		PrintLabelValue("enable_direct_commands", strconv.FormatBool(cfg.EnableDirectCommands))
		PrintLabelValue("show_intent", strconv.FormatBool(cfg.ShowIntent))
		PrintLabelValue("context_lines", strconv.Itoa(cfg.ContextLines))

		key := "unset"
		if cfg.APIKey != "" {
			key = "set"
		}
		PrintLabelValue("api_key", key)
		PrintLabelValue("log_file", paths.LogFile())
		return nil
	},
}
