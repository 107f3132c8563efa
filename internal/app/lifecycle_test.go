package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/anvil/internal/models"
	"github.com/example/anvil/internal/ports/secondary"
)

type lifecycleFixture struct {
	ctrl   *LifecycleController
	state  *SessionState
	binder *ShortcutBinder
	file   *mockRecipeFile
	menu   *mockMenu
	hooks  *ExitHooks
}

func newLifecycleFixture() *lifecycleFixture {
	f := &lifecycleFixture{
		state:  NewSessionState(),
		binder: NewShortcutBinder(),
		file:   newMockRecipeFile(),
		menu:   &mockMenu{},
		hooks:  NewExitHooks(),
	}
	f.ctrl = NewLifecycleController(f.state, f.binder, f.file, f.menu, f.hooks)
	return f
}

func TestLifecycle_EnableLoadsAndBinds(t *testing.T) {
	f := newLifecycleFixture()
	f.file.loadResult = &secondary.LoadResult{
		Entries: []models.Recipe{
			{Key: models.RecipeKey{Dir: "/proj", Command: "make"}, Name: "Build", Shortcut: 'b'},
			{Key: models.RecipeKey{Dir: "/proj", Command: "make test"}, Name: "Test"},
		},
		LastDir:     "/proj",
		LastCommand: "make",
	}

	if err := f.ctrl.Enable(context.Background()); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}

	if !f.ctrl.Enabled() {
		t.Error("controller not enabled")
	}
	if f.state.Store.Len() != 2 {
		t.Errorf("store has %d entries, want 2", f.state.Store.Len())
	}
	if _, ok := f.binder.Resolve('b'); !ok {
		t.Error("shortcut 'b' not rebound on load")
	}
	if f.state.Build != (models.BuildState{Dir: "/proj", Command: "make"}) {
		t.Errorf("build state = %+v, want recovered snapshot", f.state.Build)
	}
	if f.menu.renders != 1 {
		t.Errorf("menu rendered %d times on enable, want 1", f.menu.renders)
	}
}

func TestLifecycle_LoadRefusesNonEmptyStore(t *testing.T) {
	f := newLifecycleFixture()
	f.state.Store.Put(models.Recipe{
		Key: models.RecipeKey{Dir: "/proj", Command: "make"}, Name: "Build",
	})

	err := f.ctrl.Load(context.Background(), false)
	if !errors.Is(err, ErrRefusedLoad) {
		t.Fatalf("err = %v, want ErrRefusedLoad", err)
	}
	if f.state.Store.Len() != 1 {
		t.Error("refused load mutated the store")
	}
}

func TestLifecycle_ForceLoadMergesByKey(t *testing.T) {
	f := newLifecycleFixture()
	key := models.RecipeKey{Dir: "/proj", Command: "make"}
	f.state.Store.Put(models.Recipe{Key: key, Name: "Stale", Shortcut: 's'})
	f.binder.Bind('s', key)
	f.file.loadResult = &secondary.LoadResult{
		Entries: []models.Recipe{{Key: key, Name: "Fresh", Shortcut: 'f'}},
	}

	if err := f.ctrl.Load(context.Background(), true); err != nil {
		t.Fatalf("forced Load failed: %v", err)
	}
	if f.state.Store.Len() != 1 {
		t.Fatalf("store has %d entries, want 1 (merge by key)", f.state.Store.Len())
	}
	if e := f.state.Store.Lookup(key); e.Name != "Fresh" {
		t.Errorf("entry name = %q, want Fresh", e.Name)
	}
	if _, ok := f.binder.Resolve('s'); ok {
		t.Error("stale shortcut 's' still bound after merge")
	}
	if _, ok := f.binder.Resolve('f'); !ok {
		t.Error("loaded shortcut 'f' not bound")
	}
}

func TestLifecycle_SnapshotDoesNotClobberActiveState(t *testing.T) {
	f := newLifecycleFixture()
	f.state.Build = models.BuildState{Dir: "/live", Command: "make live"}
	f.file.loadResult = &secondary.LoadResult{LastDir: "/old", LastCommand: "make old"}

	if err := f.ctrl.Load(context.Background(), false); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.state.Build.Dir != "/live" {
		t.Errorf("active build state overwritten by snapshot: %+v", f.state.Build)
	}
}

func TestLifecycle_SnapshotCommandNeedsDirectory(t *testing.T) {
	f := newLifecycleFixture()
	f.file.loadResult = &secondary.LoadResult{LastCommand: "make orphan"}

	if err := f.ctrl.Load(context.Background(), false); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.state.Build.Command != "" {
		t.Errorf("command restored without a directory: %+v", f.state.Build)
	}
}

func TestLifecycle_DisableSavesAndClears(t *testing.T) {
	f := newLifecycleFixture()
	if err := f.ctrl.Enable(context.Background()); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}
	f.state.Store.Put(models.Recipe{
		Key: models.RecipeKey{Dir: "/proj", Command: "make"}, Name: "Build", Shortcut: 'b',
	})
	f.binder.Bind('b', models.RecipeKey{Dir: "/proj", Command: "make"})
	f.state.Build = models.BuildState{Dir: "/proj", Command: "make"}

	if err := f.ctrl.Disable(context.Background()); err != nil {
		t.Fatalf("Disable failed: %v", err)
	}

	if f.state.Store.Len() != 0 {
		t.Error("store not cleared on disable")
	}
	if f.binder.Len() != 0 {
		t.Error("bindings not cleared on disable")
	}
	if len(f.file.savedEntries) != 1 || f.file.savedEntries[0].Name != "Build" {
		t.Errorf("saved entries = %+v, want the one recipe", f.file.savedEntries)
	}
	if f.file.savedState.Dir != "/proj" {
		t.Errorf("saved snapshot = %+v, want the build state", f.file.savedState)
	}

	// The save-on-exit hook must be gone after a clean disable.
	saves := f.file.saveCalls
	f.hooks.RunAll()
	if f.file.saveCalls != saves {
		t.Error("exit hook still registered after disable")
	}

	// Re-enable after a clean disable is always safe.
	if err := f.ctrl.Enable(context.Background()); err != nil {
		t.Errorf("re-enable after disable failed: %v", err)
	}
}

func TestLifecycle_DisableKeepsStoreOnSaveFailure(t *testing.T) {
	f := newLifecycleFixture()
	if err := f.ctrl.Enable(context.Background()); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}
	f.state.Store.Put(models.Recipe{
		Key: models.RecipeKey{Dir: "/proj", Command: "make"}, Name: "Build",
	})
	f.file.saveErr = errors.New("read-only filesystem")

	err := f.ctrl.Disable(context.Background())
	if err == nil {
		t.Fatal("expected save failure to propagate")
	}
	if f.state.Store.Len() != 1 {
		t.Error("store cleared despite failed save; unsaved recipes dropped")
	}
	if !f.ctrl.Enabled() {
		t.Error("controller disabled despite failed save")
	}
}

func TestLifecycle_EnableAbortsOnRefusal(t *testing.T) {
	f := newLifecycleFixture()
	f.state.Store.Put(models.Recipe{
		Key: models.RecipeKey{Dir: "/proj", Command: "make"}, Name: "Build",
	})

	err := f.ctrl.Enable(context.Background())
	if !errors.Is(err, ErrRefusedLoad) {
		t.Fatalf("err = %v, want ErrRefusedLoad", err)
	}
	if f.ctrl.Enabled() {
		t.Error("controller enabled despite refused load")
	}
	saves := f.file.saveCalls
	f.hooks.RunAll()
	if f.file.saveCalls != saves {
		t.Error("exit hook registered despite aborted activation")
	}
}

func TestLifecycle_ExitHookFlushes(t *testing.T) {
	f := newLifecycleFixture()
	if err := f.ctrl.Enable(context.Background()); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}
	f.state.Store.Put(models.Recipe{
		Key: models.RecipeKey{Dir: "/proj", Command: "make"}, Name: "Build",
	})

	// Simulate abnormal exit: no disable, hooks fire.
	f.hooks.RunAll()

	if len(f.file.savedEntries) != 1 {
		t.Errorf("exit hook saved %d entries, want 1", len(f.file.savedEntries))
	}
}
