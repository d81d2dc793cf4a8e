package engine

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/ada/internal/tools"
)

// helpText builds the /help overview of agents and registered tools.
func helpText(registry *tools.Registry) string {
	var sb strings.Builder

	sb.WriteString("ada routes each request to a specialized agent:\n\n")
	for _, intent := range []Intent{
		IntentCodeSearch,
		IntentFileOps,
		IntentGit,
		IntentExecution,
		IntentWeb,
		IntentGeneral,
	} {
		ag := agents[intent]
		toolList := "none"
		if len(ag.tools) > 0 {
			toolList = strings.Join(ag.tools, ", ")
		}
		fmt.Fprintf(&sb, "  %-12s %s (tools: %s)\n", intent, ag.name, toolList)
	}

	sb.WriteString("\nRegistered tools:\n")
	for _, name := range registry.Names() {
		if t, ok := registry.Get(name); ok {
			fmt.Fprintf(&sb, "  %-18s %s\n", name, t.Description())
		}
	}

	sb.WriteString("\nCommands:\n")
	sb.WriteString("  /help  show this overview\n")
	sb.WriteString("  exit   leave the chat\n")

	return sb.String()
}
