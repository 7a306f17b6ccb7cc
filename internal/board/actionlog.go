package board

import "fmt"

// actionLogSize is the number of entries kept by an ActionLog.
const actionLogSize = 60

// ActionEntry is one committed board operation.
type ActionEntry struct {
	Seq    int
	Action string // e.g. "move", "draw", "undo", "formation"
	Detail string
}

// String formats the entry as a fixed-width log line.
//
//	[#007] formation  A 1-4-4-2
func (e ActionEntry) String() string {
	return fmt.Sprintf("[#%03d] %-10s %s", e.Seq, e.Action, e.Detail)
}

// ActionLog is a ring buffer of the most recent board operations, shown in
// the side panel and printed by the report tool.
type ActionLog struct {
	entries []ActionEntry
	head    int
	count   int
	seq     int
}

// NewActionLog creates an action log with a fixed capacity.
func NewActionLog() *ActionLog {
	return &ActionLog{entries: make([]ActionEntry, actionLogSize)}
}

// Add appends an entry to the log.
func (l *ActionLog) Add(action, format string, args ...any) {
	l.seq++
	l.entries[l.head] = ActionEntry{
		Seq:    l.seq,
		Action: action,
		Detail: fmt.Sprintf(format, args...),
	}
	l.head = (l.head + 1) % actionLogSize
	if l.count < actionLogSize {
		l.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (l *ActionLog) Recent() []ActionEntry {
	result := make([]ActionEntry, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.head - l.count + i + actionLogSize) % actionLogSize
		result[i] = l.entries[idx]
	}
	return result
}

// Len returns the number of entries currently held.
func (l *ActionLog) Len() int { return l.count }
