package app

// ExitHooks is a small registry of teardown functions to run when the
// process exits abnormally. The lifecycle controller registers its
// save hook on enable and removes it again on a clean disable, so hooks
// only ever fire for sessions that were not shut down properly.
type ExitHooks struct {
	seq   int
	hooks map[int]func()
	order []int
}

// NewExitHooks creates an empty registry.
func NewExitHooks() *ExitHooks {
	return &ExitHooks{hooks: make(map[int]func())}
}

// Register adds a hook and returns its handle.
func (h *ExitHooks) Register(fn func()) int {
	h.seq++
	h.hooks[h.seq] = fn
	h.order = append(h.order, h.seq)
	return h.seq
}

// Unregister removes the hook with this handle.
func (h *ExitHooks) Unregister(id int) {
	delete(h.hooks, id)
}

// RunAll fires the remaining hooks in registration order and clears the
// registry. Safe to call more than once.
func (h *ExitHooks) RunAll() {
	for _, id := range h.order {
		if fn, ok := h.hooks[id]; ok {
			fn()
		}
	}
	h.hooks = make(map[int]func())
	h.order = nil
}
