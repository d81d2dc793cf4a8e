package cli

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/ada/internal/engine"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		res, err := eng.Handle(cmd.Context(), engine.Request{
			SessionID: uuid.NewString(),
			Input:     strings.Join(args, " "),
		})
		if err != nil {
			return err
		}

		printResult(res, cfg.ShowIntent)
		return nil
	},
}
