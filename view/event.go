package view

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/rpupo63/portfolio/errs"
)

const (
	// RefAttr identifies an element that has handlers in the current render.
	RefAttr = "data-ref"
	// OnAttr lists the event types an element listens for.
	OnAttr = "data-on"

	Click = "click"
)

// Event is a UI event travelling from its target up through its ancestors.
type Event struct {
	Type    string
	Target  *html.Node
	Current *html.Node

	handled   bool
	stopped   bool
	prevented bool
}

// StopPropagation keeps the event from reaching further ancestors.
func (e *Event) StopPropagation() { e.stopped = true }

// PreventDefault suppresses the browser's default action (link following).
func (e *Event) PreventDefault() { e.prevented = true }

func (e *Event) Stopped() bool          { return e.stopped }
func (e *Event) DefaultPrevented() bool { return e.prevented }

// Handled reports whether any handler ran.
func (e *Event) Handled() bool { return e.handled }

// Handler reacts to an event.
type Handler func(*Event)

// Handlers collects the handlers attached during a single render. Refs are
// assigned in attachment order, so equal state renders equal refs.
type Handlers struct {
	next  int
	byRef map[string]map[string]Handler
}

func NewHandlers() *Handlers {
	return &Handlers{byRef: make(map[string]map[string]Handler)}
}

// On attaches fn for eventType to the element being built.
func (h *Handlers) On(eventType string, fn Handler) Option {
	return optionFunc(func(n *html.Node) {
		ref := AttrValue(n, RefAttr)
		if ref == "" {
			h.next++
			ref = "e" + strconv.Itoa(h.next)
			SetAttr(n, RefAttr, ref)
		}
		if h.byRef[ref] == nil {
			h.byRef[ref] = make(map[string]Handler)
		}
		h.byRef[ref][eventType] = fn

		types := strings.Fields(AttrValue(n, OnAttr))
		for _, t := range types {
			if t == eventType {
				return
			}
		}
		SetAttr(n, OnAttr, strings.Join(append(types, eventType), " "))
	})
}

// OnClick is shorthand for On(Click, fn).
func (h *Handlers) OnClick(fn Handler) Option {
	return h.On(Click, fn)
}

func (h *Handlers) lookup(n *html.Node, eventType string) Handler {
	ref := AttrValue(n, RefAttr)
	if ref == "" {
		return nil
	}
	return h.byRef[ref][eventType]
}

// Document is one committed render: the tree plus its handlers.
type Document struct {
	Root     *html.Node
	handlers *Handlers
}

func NewDocument(root *html.Node, handlers *Handlers) *Document {
	if handlers == nil {
		handlers = NewHandlers()
	}
	return &Document{Root: root, handlers: handlers}
}

// ElementByID returns the element whose id attribute equals id, or nil.
func (d *Document) ElementByID(id string) *html.Node {
	if d == nil || id == "" {
		return nil
	}
	return Find(d.Root, func(n *html.Node) bool { return AttrValue(n, "id") == id })
}

// ElementByRef returns the element carrying ref, or nil.
func (d *Document) ElementByRef(ref string) *html.Node {
	if d == nil || ref == "" {
		return nil
	}
	return Find(d.Root, func(n *html.Node) bool { return AttrValue(n, RefAttr) == ref })
}

// Dispatch delivers an event at target and bubbles it through the
// ancestors until a handler stops propagation.
func (d *Document) Dispatch(target *html.Node, eventType string) *Event {
	ev := &Event{Type: eventType, Target: target}
	for n := target; n != nil; n = n.Parent {
		fn := d.handlers.lookup(n, eventType)
		if fn == nil {
			continue
		}
		ev.Current = n
		ev.handled = true
		fn(ev)
		if ev.stopped {
			break
		}
	}
	ev.Current = nil
	return ev
}

// DispatchRef is Dispatch addressed by data-ref, as sent by the client.
func (d *Document) DispatchRef(ref, eventType string) (*Event, error) {
	target := d.ElementByRef(ref)
	if target == nil {
		return nil, errs.NewUnknownRefError(ref)
	}
	return d.Dispatch(target, eventType), nil
}
