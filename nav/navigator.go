package nav

import "sync"

// Landing paths the managers navigate to.
const (
	PathDashboard   = "/dashboard"
	PathBookingList = "/"
	PathLogin       = "/login"
)

// Navigator is the navigation sink. GoTo with replace=true replaces
// history so "back" cannot return to the previous view.
type Navigator interface {
	GoTo(path string, replace bool)
}

// Move is one recorded navigation.
type Move struct {
	Path    string
	Replace bool
}

// Recorder captures the most recent navigation so the HTTP facade can hand
// it back to the UI as a redirect instruction. The UI dispatches one
// operation at a time, so only the latest move is kept.
type Recorder struct {
	mu   sync.Mutex
	last *Move
}

func (r *Recorder) GoTo(path string, replace bool) {
	r.mu.Lock()
	r.last = &Move{Path: path, Replace: replace}
	r.mu.Unlock()
}

// TakeLast returns the most recent navigation and clears it, or nil when
// no navigation occurred since the previous call.
func (r *Recorder) TakeLast() *Move {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.last
	r.last = nil
	return m
}
