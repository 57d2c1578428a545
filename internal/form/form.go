// Package form assembles the outgoing job request from the target lists of
// a transfer registry and the active tab.
package form

import (
	"net/url"
	"strings"

	"github.com/ruminaider/panseq-form/internal/transfer"
	"go.yaml.in/yaml/v3"
)

// Delimiter joins item ids within one field.
const Delimiter = ","

// Request field names.
const (
	FieldQuery     = "querySelected"
	FieldReference = "referenceSelected"
	FieldRunMode   = "runMode"
)

// Field names one request field and the pairs whose targets feed it, in
// concatenation order.
type Field struct {
	Name  string
	Lists []string
}

// Layout is the ordered set of list-backed fields of a form.
type Layout []Field

// DefaultLayout feeds plain and novel query targets into querySelected
// (plain first) and the reference target into referenceSelected.
func DefaultLayout() Layout {
	return Layout{
		{Name: FieldQuery, Lists: []string{"query", "query-novel"}},
		{Name: FieldReference, Lists: []string{"reference"}},
	}
}

// PairSource is satisfied by *transfer.Registry.
type PairSource interface {
	Pair(name string) (*transfer.Pair, bool)
}

// OnTab restricts src to the named pairs. Assembling from it leaves out
// every list the active tab does not show.
func OnTab(src PairSource, lists []string) PairSource {
	shown := make(map[string]bool, len(lists))
	for _, name := range lists {
		shown[name] = true
	}
	return tabSource{src: src, shown: shown}
}

type tabSource struct {
	src   PairSource
	shown map[string]bool
}

func (t tabSource) Pair(name string) (*transfer.Pair, bool) {
	if !t.shown[name] {
		return nil, false
	}
	return t.src.Pair(name)
}

// FieldSetter receives the assembled fields. url.Values satisfies it.
type FieldSetter interface {
	Set(key, value string)
}

// Value is one assembled field.
type Value struct {
	Name  string
	Value string
}

// Submission is the result of assembling a form.
type Submission struct {
	Fields []Value
	Mode   Mode
}

// Assemble reads every target list named by layout and the active tab
// index, and returns the request fields. Pairs are only read. A pair the
// layout names but src lacks contributes nothing; an empty target yields
// an empty string, never a missing field.
func Assemble(src PairSource, layout Layout, activeTab int) (Submission, error) {
	mode, err := ModeForTab(activeTab)
	if err != nil {
		return Submission{}, err
	}
	sub := Submission{Mode: mode, Fields: make([]Value, 0, len(layout))}
	for _, f := range layout {
		var ids []string
		for _, name := range f.Lists {
			p, ok := src.Pair(name)
			if !ok {
				continue
			}
			ids = append(ids, p.TargetIDs()...)
		}
		sub.Fields = append(sub.Fields, Value{Name: f.Name, Value: strings.Join(ids, Delimiter)})
	}
	return sub, nil
}

// Get returns the value of a field, including runMode.
func (s Submission) Get(name string) (string, bool) {
	if name == FieldRunMode {
		return string(s.Mode), s.Mode != ""
	}
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Apply writes every field and runMode into w.
func (s Submission) Apply(w FieldSetter) {
	for _, f := range s.Fields {
		w.Set(f.Name, f.Value)
	}
	w.Set(FieldRunMode, string(s.Mode))
}

// Values returns the submission as url.Values.
func (s Submission) Values() url.Values {
	v := url.Values{}
	s.Apply(v)
	return v
}

// Encode returns the submission as an URL-encoded form body.
func (s Submission) Encode() string {
	return s.Values().Encode()
}

// MarshalYAML renders the fields as a mapping in layout order, runMode last.
func (s Submission) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k, v string) {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: v, Style: yaml.DoubleQuotedStyle},
		)
	}
	for _, f := range s.Fields {
		add(f.Name, f.Value)
	}
	add(FieldRunMode, string(s.Mode))
	return node, nil
}
