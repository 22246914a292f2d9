package domain

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Identifiers of the landing page elements.
const (
	ElemRiskStatus   = "riskStatus"
	ElemStressStatus = "stressStatus"
	ElemRunScore     = "runScore"
	ElemScoreOutput  = "scoreOutput"
	ElemHeroTitle    = "heroTitle"
	ElemHeroSub      = "heroSub"
	ElemHeroBtn      = "heroBtn"
	ElemTrBtn        = "trBtn"
	ElemEnBtn        = "enBtn"
)

// LandingElementIDs lists every element the landing page expects at load time.
var LandingElementIDs = []string{
	ElemRiskStatus,
	ElemStressStatus,
	ElemRunScore,
	ElemScoreOutput,
	ElemHeroTitle,
	ElemHeroSub,
	ElemHeroBtn,
	ElemTrBtn,
	ElemEnBtn,
}

// ClassActive marks the selected language toggle.
const ClassActive = "active"

// Element is a named piece of page state: text, inline color and CSS classes.
// It is safe for concurrent use; pollers write while request goroutines read.
type Element struct {
	id string

	mu      sync.RWMutex
	text    string
	color   string
	classes map[string]struct{}
}

// ElementView is an immutable copy of an Element handed to templates.
type ElementView struct {
	ID    string
	Text  string
	Color string
	Class string
}

func NewElement(id string) *Element {
	return &Element{id: id, classes: make(map[string]struct{})}
}

func (e *Element) ID() string { return e.id }

func (e *Element) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

func (e *Element) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text
}

func (e *Element) SetColor(color string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.color = color
}

func (e *Element) Color() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.color
}

// ToggleClass adds the class when on is true and removes it otherwise.
func (e *Element) ToggleClass(name string, on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if on {
		e.classes[name] = struct{}{}
		return
	}
	delete(e.classes, name)
}

func (e *Element) HasClass(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.classes[name]
	return ok
}

// ClassName renders the class set the way it appears in a class attribute.
func (e *Element) ClassName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.classNameLocked()
}

func (e *Element) classNameLocked() string {
	names := make([]string, 0, len(e.classes))
	for n := range e.classes {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// CopyFrom replaces this element's state with a snapshot of src.
func (e *Element) CopyFrom(src *Element) {
	if e == src {
		return
	}
	view := src.View()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = view.Text
	e.color = view.Color
	e.classes = make(map[string]struct{})
	for _, n := range strings.Fields(view.Class) {
		e.classes[n] = struct{}{}
	}
}

func (e *Element) View() ElementView {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ElementView{
		ID:    e.id,
		Text:  e.text,
		Color: e.color,
		Class: e.classNameLocked(),
	}
}

// Document is a fixed set of elements addressed by identifier.
type Document struct {
	elements map[string]*Element
}

// NewDocument creates an element for each identifier.
func NewDocument(ids ...string) *Document {
	d := &Document{elements: make(map[string]*Element, len(ids))}
	for _, id := range ids {
		d.elements[id] = NewElement(id)
	}
	return d
}

// NewLandingDocument creates a document holding every landing page element.
func NewLandingDocument() *Document {
	return NewDocument(LandingElementIDs...)
}

// Lookup returns the element with the given identifier.
func (d *Document) Lookup(id string) (*Element, error) {
	el, ok := d.elements[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, id)
	}
	return el, nil
}

// LookupAll resolves several identifiers at once, failing on the first miss.
func (d *Document) LookupAll(ids ...string) ([]*Element, error) {
	out := make([]*Element, 0, len(ids))
	for _, id := range ids {
		el, err := d.Lookup(id)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}

// View snapshots every element, keyed by identifier.
func (d *Document) View() map[string]ElementView {
	out := make(map[string]ElementView, len(d.elements))
	for id, el := range d.elements {
		out[id] = el.View()
	}
	return out
}
