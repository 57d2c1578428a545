package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ruminaider/panseq-form/internal/config"
	"github.com/ruminaider/panseq-form/internal/form"
	"github.com/ruminaider/panseq-form/internal/transfer"
)

// Pick is a list name and the ids to move into its target.
type Pick struct {
	List string
	IDs  []string
}

// ParsePicks parses "list=id,id" arguments. Repeated lists accumulate in
// argument order.
func ParsePicks(args []string) ([]Pick, error) {
	picks := make([]Pick, 0, len(args))
	for _, arg := range args {
		name, ids, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("pick %q: expected list=id[,id...]", arg)
		}
		var clean []string
		for _, id := range strings.Split(ids, form.Delimiter) {
			if id = strings.TrimSpace(id); id != "" {
				clean = append(clean, id)
			}
		}
		picks = append(picks, Pick{List: name, IDs: clean})
	}
	return picks, nil
}

// ApplyPicks selects each pick's ids in the source of its list and
// transfers them. Ids already in the target are skipped. Each pick is one
// transfer, so target order follows source order within a pick and pick
// order across picks.
func ApplyPicks(reg *transfer.Registry, picks []Pick) error {
	for _, pk := range picks {
		p, err := reg.Lookup(pk.List)
		if err != nil {
			return err
		}
		var errs []error
		for _, id := range pk.IDs {
			if p.Has(transfer.Target, id) {
				continue
			}
			if err := p.Select(transfer.Source, id); err != nil {
				errs = append(errs, err)
			}
		}
		if err := errors.Join(errs...); err != nil {
			p.ClearSelection(transfer.Source)
			return err
		}
		moved := p.TransferSelected()
		slog.Debug("transferred", "pair", pk.List, "ids", transfer.IDs(moved))
	}
	return nil
}

// AssembleOptions configures a non-interactive assembly.
type AssembleOptions struct {
	Tab   int
	Picks []Pick
}

// Assemble builds a session from cfg, applies the picks and assembles the
// request for the chosen tab.
func Assemble(cfg config.Config, opts AssembleOptions) (form.Submission, error) {
	s, err := NewSession(cfg)
	if err != nil {
		return form.Submission{}, err
	}
	if err := ApplyPicks(s.Registry, opts.Picks); err != nil {
		return form.Submission{}, err
	}
	return s.Submit(opts.Tab)
}
