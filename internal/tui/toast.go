package tui

import "sync"

type toastKind int

const (
	toastNone toastKind = iota
	toastSuccess
	toastError
)

// toastRecorder implements form.Notifier. Submissions run on a background
// goroutine (tea.Cmd), so the latest toast is read back under a lock when
// the result message arrives.
type toastRecorder struct {
	mu   sync.Mutex
	text string
	kind toastKind
}

func (t *toastRecorder) Success(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = msg
	t.kind = toastSuccess
}

func (t *toastRecorder) Error(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = msg
	t.kind = toastError
}

func (t *toastRecorder) Last() (string, toastKind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text, t.kind
}

func (t *toastRecorder) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = ""
	t.kind = toastNone
}
