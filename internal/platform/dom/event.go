package dom

import (
	"fmt"

	"golang.org/x/net/html"
)

const (
	EventClick   = "click"
	EventKeyDown = "keydown"
)

type Listener func(*Event)

type Event struct {
	Type   string
	Target *html.Node
	// Key is the key name for keydown events, e.g. "Escape".
	Key string

	defaultPrevented   bool
	propagationStopped bool
}

func NewClick(target *html.Node) *Event {
	return &Event{Type: EventClick, Target: target}
}

func NewKeyDown(target *html.Node, key string) *Event {
	return &Event{Type: EventKeyDown, Target: target, Key: key}
}

func (e *Event) PreventDefault()          { e.defaultPrevented = true }
func (e *Event) StopPropagation()         { e.propagationStopped = true }
func (e *Event) DefaultPrevented() bool   { return e.defaultPrevented }
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// AddEventListener registers l on node for events of type typ. Listeners on
// one node run in registration order.
func (d *Document) AddEventListener(node *html.Node, typ string, l Listener) {
	if node == nil || l == nil {
		return
	}
	byType, ok := d.listeners[node]
	if !ok {
		byType = map[string][]Listener{}
		d.listeners[node] = byType
	}
	byType[typ] = append(byType[typ], l)
}

// Dispatch bubbles ev from its target up to the document node. StopPropagation
// lets the remaining listeners of the current node run and skips the ancestors.
// A panicking listener aborts the dispatch and is reported as an error.
func (d *Document) Dispatch(ev *Event) (err error) {
	if ev == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s listener panicked: %v", ev.Type, r)
		}
	}()
	for n := ev.Target; n != nil; n = n.Parent {
		for _, l := range d.listeners[n][ev.Type] {
			l(ev)
		}
		if ev.propagationStopped {
			return nil
		}
	}
	return nil
}
