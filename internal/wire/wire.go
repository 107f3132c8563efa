// Package wire provides dependency injection for the anvil application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/example/anvil/internal/adapters/recipefile"
	"github.com/example/anvil/internal/adapters/render"
	"github.com/example/anvil/internal/adapters/runner"
	"github.com/example/anvil/internal/adapters/sqlite"
	"github.com/example/anvil/internal/app"
	"github.com/example/anvil/internal/config"
	"github.com/example/anvil/internal/db"
	"github.com/example/anvil/internal/ports/primary"
	"github.com/example/anvil/internal/ports/secondary"
	"github.com/example/anvil/internal/tui"
)

var (
	cfg            *config.Config
	hooks          *app.ExitHooks
	prompter       secondary.Prompter
	recipeService  primary.RecipeService
	restoreService primary.RestoreService
	historyService primary.HistoryService
	lifecycle      primary.Lifecycle
	once           sync.Once
)

// RecipeService returns the singleton RecipeService instance.
func RecipeService() primary.RecipeService {
	once.Do(initServices)
	return recipeService
}

// RestoreService returns the singleton RestoreService instance.
func RestoreService() primary.RestoreService {
	once.Do(initServices)
	return restoreService
}

// HistoryService returns the singleton HistoryService instance.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// Lifecycle returns the singleton Lifecycle instance.
func Lifecycle() primary.Lifecycle {
	once.Do(initServices)
	return lifecycle
}

// Hooks returns the exit hook registry so main can flush on signals.
func Hooks() *app.ExitHooks {
	once.Do(initServices)
	return hooks
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Prompter returns the prompter matching the terminal: bubbletea when
// stdin is a TTY, line-based otherwise.
func Prompter() secondary.Prompter {
	once.Do(initServices)
	return prompter
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	state := app.NewSessionState()
	binder := app.NewShortcutBinder()
	hooks = app.NewExitHooks()
	codec := recipefile.New(cfg.RecipeFile)
	menu := render.NewTableRenderer(os.Stdout)

	services := buildServices(cfg, state, binder, hooks, codec, menu)
	recipeService = services.recipes
	restoreService = services.restore
	historyService = services.history
	lifecycle = services.lifecycle
}

type serviceSet struct {
	recipes   primary.RecipeService
	restore   primary.RestoreService
	history   primary.HistoryService
	lifecycle primary.Lifecycle
}

func buildServices(
	cfg *config.Config,
	state *app.SessionState,
	binder *app.ShortcutBinder,
	hooks *app.ExitHooks,
	codec secondary.RecipeFile,
	menu secondary.MenuRenderer,
) serviceSet {
	if tui.IsInteractive() {
		prompter = tui.NewPrompter()
	} else {
		prompter = tui.NewLinePrompter(os.Stdin, os.Stderr)
	}

	history := historyRepo(cfg)
	return serviceSet{
		recipes:   app.NewRecipeService(state, binder, menu),
		restore:   app.NewRestoreService(state, binder, buildRunner(cfg), menu, prompter, history, os.Stderr),
		history:   app.NewHistoryService(history),
		lifecycle: app.NewLifecycleController(state, binder, codec, menu, hooks),
	}
}

// buildRunner picks the runner backend from the config.
func buildRunner(cfg *config.Config) secondary.BuildRunner {
	if cfg.Runner == config.RunnerTmux {
		r, err := runner.NewTmuxRunner(cfg.TmuxSession)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: tmux unavailable, running builds inline: %v\n", err)
			return runner.NewExecRunner(os.Stdout, os.Stderr)
		}
		return r
	}
	return runner.NewExecRunner(os.Stdout, os.Stderr)
}

// historyRepo opens the build ledger, or returns nil when history is
// disabled or the database cannot be opened. History is best-effort and
// must never block builds.
func historyRepo(cfg *config.Config) secondary.HistoryRepository {
	if cfg.HistoryDisabled {
		return nil
	}
	database, err := db.Open(cfg.HistoryDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: build history unavailable: %v\n", err)
		return nil
	}
	return sqlite.NewHistoryRepository(database)
}
