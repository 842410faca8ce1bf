// Package trace carries optional structured events out of the pure
// computation packages without tying them to a logger.
package trace

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"fms-dashboard/pkg/log"
)

// Event is a single observation emitted by a computation.
type Event struct {
	Op     string
	Task   string
	Fields map[string]any
}

// Hook receives events. A nil Hook is valid and drops everything.
type Hook func(Event)

// Emit calls h with e when h is set.
func (h Hook) Emit(e Event) {
	if h != nil {
		h(e)
	}
}

// String renders the event as "op task k=v ..." with keys sorted.
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Task != "" {
		b.WriteString(" task=")
		b.WriteString(e.Task)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	return b.String()
}

// LoggerHook writes events to l at debug level.
func LoggerHook(l log.Logger) Hook {
	return func(e Event) {
		l.Debugf(context.Background(), "trace: %s", e.String())
	}
}

// Multi fans an event out to every non-nil hook.
func Multi(hooks ...Hook) Hook {
	return func(e Event) {
		for _, h := range hooks {
			h.Emit(e)
		}
	}
}
