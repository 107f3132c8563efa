package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/anvil/internal/models"
	"github.com/example/anvil/internal/ports/secondary"
)

// ErrRefusedLoad is returned when a load would run against a store that
// already holds entries without force. That situation is an ordering bug
// (enable without a prior disable), not user error, and activation must
// abort rather than risk clobbering unsaved recipes.
var ErrRefusedLoad = errors.New("recipe store already has entries; refusing to load without force")

// LifecycleController sequences enable/disable of the recipe subsystem.
type LifecycleController struct {
	state   *SessionState
	binder  *ShortcutBinder
	file    secondary.RecipeFile
	menu    secondary.MenuRenderer
	hooks   *ExitHooks
	hookID  int
	enabled bool
}

// NewLifecycleController creates a controller in the Disabled state.
func NewLifecycleController(
	state *SessionState,
	binder *ShortcutBinder,
	file secondary.RecipeFile,
	menu secondary.MenuRenderer,
	hooks *ExitHooks,
) *LifecycleController {
	return &LifecycleController{
		state:  state,
		binder: binder,
		file:   file,
		menu:   menu,
		hooks:  hooks,
	}
}

// Enable transitions Disabled → Enabled: load the store (refusing stale
// state), install the save-on-exit hook, render the initial menu.
func (c *LifecycleController) Enable(ctx context.Context) error {
	if err := c.Load(ctx, false); err != nil {
		return fmt.Errorf("cannot enable recipes: %w", err)
	}
	c.hookID = c.hooks.Register(func() {
		// Last-chance flush on abnormal exit; nothing left to report to.
		_ = c.file.Save(c.state.Store.Sorted(), c.state.Build)
	})
	c.menu.Render(c.state.Store.Sorted(), c.state.Build)
	c.enabled = true
	return nil
}

// Disable transitions Enabled → Disabled: save, clear the store so the
// next enable can load cleanly, drop the exit hook. A failed save
// returns before anything is cleared so data loss stays visible.
func (c *LifecycleController) Disable(ctx context.Context) error {
	if !c.enabled {
		return nil
	}
	if err := c.Save(ctx); err != nil {
		return err
	}
	c.state.Store.Clear()
	c.binder.Reset()
	c.hooks.Unregister(c.hookID)
	c.enabled = false
	return nil
}

// Enabled reports the controller state.
func (c *LifecycleController) Enabled() bool {
	return c.enabled
}

// Save flushes the store and the build-state snapshot to disk.
func (c *LifecycleController) Save(ctx context.Context) error {
	if err := c.file.Save(c.state.Store.Sorted(), c.state.Build); err != nil {
		return fmt.Errorf("failed to save recipes: %w", err)
	}
	return nil
}

// Load populates the store from the recipe file.
//
// Without force, a non-empty store refuses the load and stays unchanged.
// Loaded entries merge by key (replace semantics), shortcuts are rebound
// strictly after each entry's metadata is in the store, and the build
// state, only when currently unset, is recovered from the snapshot:
// the directory, and the command only if a directory was restored.
func (c *LifecycleController) Load(ctx context.Context, force bool) error {
	if c.state.Store.Len() > 0 && !force {
		return ErrRefusedLoad
	}

	res, err := c.file.Load()
	if err != nil {
		return fmt.Errorf("failed to load recipes: %w", err)
	}

	for _, e := range res.Entries {
		if existing := c.state.Store.Lookup(e.Key); existing != nil && existing.Shortcut != 0 {
			c.binder.Unbind(existing.Shortcut)
		}
		c.state.Store.Put(e)
		c.binder.Bind(e.Shortcut, e.Key)
	}

	if c.state.Build.Unset() && res.LastDir != "" {
		c.state.Build = models.BuildState{Dir: res.LastDir, Command: res.LastCommand}
	}
	return nil
}
