package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/danieljhkim/ada/internal/clock"
	"github.com/danieljhkim/ada/internal/config"
	"github.com/danieljhkim/ada/internal/engine"
	"github.com/danieljhkim/ada/internal/fsops"
	"github.com/danieljhkim/ada/internal/gitx"
	"github.com/danieljhkim/ada/internal/llm"
	"github.com/danieljhkim/ada/internal/tools"
)

// newEngine creates an engine with real implementations of all dependencies.
// The returned cleanup flushes the logger and must be called before exit.
func newEngine() (*engine.Engine, *config.Config, func(), error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, nil, nil, fmt.Errorf("no API key: set api_key in %s or export OPENAI_API_KEY", paths.Config)
	}

	logger, err := newLogger(paths.LogFile())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	cleanup := func() {
		_ = logger.Sync()
	}

	client := llm.NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.MaxTokens)
	registry := newRegistry(cfg)

	return engine.New(client, registry, &clock.RealClock{}, logger, cfg), cfg, cleanup, nil
}

// newRegistry builds the full tool set.
func newRegistry(cfg *config.Config) *tools.Registry {
	fs := fsops.NewRealFS()
	repo := gitx.NewRealGitRepo()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	// Git commands run from the repo root when one is found.
	workDir := cwd
	if root, err := repo.Discover(cwd); err == nil {
		workDir = root
	}

	return tools.NewRegistry(
		tools.NewReadFileTool(fs),
		tools.NewEditTool(fs, cfg.ContextLines),
		tools.NewWriteFilesTool(fs, cfg.ContextLines),
		tools.NewFileOpsTool(fs, cfg.ContextLines),
		tools.NewGrepTool(),
		tools.NewGlobTool(),
		tools.NewGitTool(repo, workDir),
		tools.NewExecuteTool(),
		tools.NewListDirTool(),
		tools.NewTreeTool(),
		tools.NewSearchDirTool(),
		tools.NewWebFetchTool(),
	)
}

// newLogger writes structured logs to the ada log file so the interactive
// loop stays clean.
func newLogger(path string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapCfg.Build()
}
