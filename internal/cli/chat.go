package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/ada/internal/engine"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session.

Each line is classified and routed to the matching agent. Type /help for an
overview of agents and tools, exit or quit to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		session := uuid.NewString()
		PrintHeader(fmt.Sprintf("ada chat (session %s)", session[:8]))
		PrintInfo("Type /help for available agents and tools, exit to leave.")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			_, _ = dimColor.Print("you> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if input == "exit" || input == "quit" {
				break
			}

			res, err := eng.Handle(cmd.Context(), engine.Request{
				SessionID: session,
				Input:     input,
			})
			if err != nil {
				fmt.Println(formatError(err))
				continue
			}

			printResult(res, cfg.ShowIntent)
		}

		return scanner.Err()
	},
}

// printResult writes one engine answer, with the intent banner when enabled.
func printResult(res *engine.Result, showIntent bool) {
	if showIntent && !res.Direct && res.Intent != "" {
		_, _ = dimColor.Println(intentPrefix(string(res.Intent), res.Agent))
	}
	fmt.Println(res.Text)
}
