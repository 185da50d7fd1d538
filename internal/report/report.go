// Package report carries the outcome of filesystem and scaffolding
// operations as data. Services never print; they return entries and the
// CLI decides how to render them.
package report

import "fmt"

// Kind classifies an entry.
type Kind int

const (
	Debug Kind = iota
	Info
	Success
	Warning
	Error
)

// String returns the lowercase label for the kind.
func (k Kind) String() string {
	switch k {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is a single outcome: what kind of thing happened, and a message.
type Entry struct {
	Kind    Kind
	Message string
}

// Successf builds a success entry.
func Successf(format string, args ...any) Entry {
	return Entry{Kind: Success, Message: fmt.Sprintf(format, args...)}
}

// Warningf builds a warning entry.
func Warningf(format string, args ...any) Entry {
	return Entry{Kind: Warning, Message: fmt.Sprintf(format, args...)}
}

// Errorf builds an error entry.
func Errorf(format string, args ...any) Entry {
	return Entry{Kind: Error, Message: fmt.Sprintf(format, args...)}
}

// Infof builds an info entry.
func Infof(format string, args ...any) Entry {
	return Entry{Kind: Info, Message: fmt.Sprintf(format, args...)}
}

// Debugf builds a debug entry; only shown in verbose mode.
func Debugf(format string, args ...any) Entry {
	return Entry{Kind: Debug, Message: fmt.Sprintf(format, args...)}
}

// Report is an ordered list of entries produced by one operation.
type Report struct {
	Entries []Entry
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Add appends entries in order.
func (r *Report) Add(entries ...Entry) {
	r.Entries = append(r.Entries, entries...)
}

// Merge appends every entry of other. A nil other is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Entries = append(r.Entries, other.Entries...)
}

// Count returns how many entries have the given kind.
func (r *Report) Count(kind Kind) int {
	n := 0
	for _, e := range r.Entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Messages returns the messages of every entry with the given kind.
func (r *Report) Messages(kind Kind) []string {
	var out []string
	for _, e := range r.Entries {
		if e.Kind == kind {
			out = append(out, e.Message)
		}
	}
	return out
}

// HasErrors reports whether any entry is an error.
func (r *Report) HasErrors() bool {
	return r.Count(Error) > 0
}
