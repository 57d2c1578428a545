package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ruminaider/panseq-form/internal/config"
	"github.com/ruminaider/panseq-form/internal/form"
	"github.com/ruminaider/panseq-form/internal/transfer"
)

// ErrUnknownTab is returned when submitting from a tab the definition does
// not declare.
var ErrUnknownTab = errors.New("form has no such tab")

// Session is one form session: the pairs built from a definition, the
// field layout, and the tabs.
type Session struct {
	Registry *transfer.Registry
	Layout   form.Layout
	Tabs     []config.Tab
	Titles   map[string]string // list name -> display title
}

// NewSession builds the registry for cfg and preloads each list's
// selected ids into its target.
func NewSession(cfg config.Config) (*Session, error) {
	s := &Session{
		Registry: transfer.NewRegistry(),
		Layout:   Layout(cfg),
		Tabs:     cfg.Tabs,
		Titles:   make(map[string]string, len(cfg.Lists)),
	}
	for _, l := range cfg.Lists {
		its := make([]transfer.Item, 0, len(l.Items))
		for _, it := range l.Items {
			its = append(its, transfer.Item{ID: it.ID, Label: it.Label})
		}
		p, err := s.Registry.Add(l.Name, its)
		if err != nil {
			return nil, fmt.Errorf("building list %s: %w", l.Name, err)
		}
		if len(l.Selected) > 0 {
			p.Preload(l.Selected)
		}
		s.Titles[l.Name] = l.Title
		if s.Titles[l.Name] == "" {
			s.Titles[l.Name] = l.Name
		}
	}
	if len(s.Tabs) == 0 {
		// One tab showing every list.
		s.Tabs = []config.Tab{{Title: "Pan-genome", Lists: s.Registry.Names()}}
	}
	slog.Debug("session built", "lists", s.Registry.Names(), "tabs", len(s.Tabs))
	return s, nil
}

// Layout converts the definition's fields to a form layout, falling back to
// the default layout when the definition names none.
func Layout(cfg config.Config) form.Layout {
	if len(cfg.Fields) == 0 {
		return form.DefaultLayout()
	}
	layout := make(form.Layout, 0, len(cfg.Fields))
	for _, f := range cfg.Fields {
		layout = append(layout, form.Field{Name: f.Name, Lists: f.Lists})
	}
	return layout
}

// Submit assembles the session's request for the given tab. Only the
// lists shown on that tab feed the request fields.
func (s *Session) Submit(activeTab int) (form.Submission, error) {
	var lists []string
	if activeTab >= 0 && activeTab < len(s.Tabs) {
		lists = s.Tabs[activeTab].Lists
	}
	sub, err := form.Assemble(form.OnTab(s.Registry, lists), s.Layout, activeTab)
	if err == nil && activeTab >= len(s.Tabs) {
		err = fmt.Errorf("tab %d of %d: %w", activeTab, len(s.Tabs), ErrUnknownTab)
	}
	if err != nil {
		slog.Warn("submit rejected", "tab", activeTab, "err", err)
		return form.Submission{}, err
	}
	slog.Info("submit", "mode", sub.Mode, "fields", len(sub.Fields))
	return sub, nil
}
