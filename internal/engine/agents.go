package engine

// Intent is the category an input is routed by.
type Intent string

const (
	IntentCodeSearch Intent = "code_search"
	IntentFileOps    Intent = "file_ops"
	IntentGit        Intent = "git"
	IntentExecution  Intent = "execution"
	IntentWeb        Intent = "web"
	IntentGeneral    Intent = "general"
)

// agent is one routing target: a system preamble, the tools it may call,
// and how many tool rounds it gets. maxTurns of 0 defers to the configured
// multi_turn_depth.
type agent struct {
	name     string
	preamble string
	tools    []string
	maxTurns int
}

var agents = map[Intent]agent{
	IntentCodeSearch: {
		name: "Code Search Agent",
		preamble: "You are a code search assistant. Use the available tools to " +
			"locate files, search file contents, and read code. Cite file paths " +
			"and line numbers in your answers.",
		tools: []string{"read_file", "grep", "glob", "search_directory", "list_directory", "tree"},
	},
	IntentFileOps: {
		name: "File Operations Agent",
		preamble: "You are a file operations assistant. Use the available tools " +
			"to read, create, edit, move, copy, and delete files. Prefer edit for " +
			"small changes and write_files for new or rewritten files.",
		tools: []string{"read_file", "edit", "write_files", "file_ops", "list_directory", "tree"},
	},
	IntentGit: {
		name: "Git Agent",
		preamble: "You are a git assistant. Use the git tool to inspect and " +
			"modify the repository. Never force-push or rewrite history unless " +
			"explicitly asked.",
		tools: []string{"git", "read_file", "list_directory"},
	},
	IntentExecution: {
		name: "Execution Agent",
		preamble: "You are a command execution assistant. Use the execute tool " +
			"to run shell commands and report their output faithfully.",
		tools: []string{"execute", "list_directory"},
	},
	IntentWeb: {
		name: "Web Agent",
		preamble: "You are a web assistant. Use the webfetch tool to retrieve " +
			"pages and summarize their content for the user.",
		tools: []string{"webfetch"},
	},
	IntentGeneral: {
		name: "General Assistant",
		preamble: "You are ada, a helpful terminal assistant. Answer concisely " +
			"and accurately.",
		maxTurns: 5,
	},
}

// agentFor returns the agent for an intent, falling back to the general
// assistant for anything unknown.
func agentFor(intent Intent) agent {
	if ag, ok := agents[intent]; ok {
		return ag
	}
	return agents[IntentGeneral]
}
