package commands

import "github.com/ruminaider/panseq-form/internal/transfer"

// ListSummary describes one pair for the lists command.
type ListSummary struct {
	Name   string
	Title  string
	Source []transfer.Item // visible source items
	Target []transfer.Item
}

// Lists summarizes every pair of the session in registration order.
func (s *Session) Lists() []ListSummary {
	names := s.Registry.Names()
	out := make([]ListSummary, 0, len(names))
	for _, name := range names {
		p, _ := s.Registry.Pair(name)
		out = append(out, ListSummary{
			Name:   name,
			Title:  s.Titles[name],
			Source: p.Visible(transfer.Source),
			Target: p.Visible(transfer.Target),
		})
	}
	return out
}
