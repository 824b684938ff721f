package usecase

import (
	"context"
	"log/slog"
	"sync"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

// TownDirectory holds the selectable towns of one form. The catalog is
// fetched at most once successfully; a failed load may be retried.
type TownDirectory struct {
	backend port.CampaignBackend
	errs    *domain.ValidationErrors
	logger  *slog.Logger

	mu      sync.RWMutex
	options []domain.TownOption
	loaded  bool
	loading bool
}

func NewTownDirectory(backend port.CampaignBackend, errs *domain.ValidationErrors, logger *slog.Logger) *TownDirectory {
	return &TownDirectory{backend: backend, errs: errs, logger: logger}
}

// Load fetches the catalog and keeps one option per distinct non-empty
// name. On failure the option list stays empty and the towns error is set.
func (d *TownDirectory) Load(ctx context.Context) {
	d.mu.Lock()
	if d.loaded || d.loading {
		d.mu.Unlock()
		return
	}
	d.loading = true
	d.mu.Unlock()

	towns, err := d.backend.ListTowns(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false
	if err != nil {
		d.logger.Error("load towns error", slog.Any("error", err))
		d.options = nil
		d.errs.Set(domain.CategoryTowns, domain.MsgTownsLoad)
		return
	}

	seen := make(map[string]struct{}, len(towns))
	options := make([]domain.TownOption, 0, len(towns))
	for _, t := range towns {
		if t.Name == "" {
			continue
		}
		if _, dup := seen[t.Name]; dup {
			continue
		}
		seen[t.Name] = struct{}{}
		options = append(options, domain.TownOption{Value: t.Name, Label: t.Name})
	}
	d.options = options
	d.loaded = true
	d.errs.Clear(domain.CategoryTowns)
}

// Options returns a copy of the selectable towns.
func (d *TownDirectory) Options() []domain.TownOption {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]domain.TownOption{}, d.options...)
}

// Resolve returns the option whose value equals town exactly. No match is
// not an error; it means nothing is selected.
func (d *TownDirectory) Resolve(town string) (domain.TownOption, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, o := range d.options {
		if o.Value == town {
			return o, true
		}
	}
	return domain.TownOption{}, false
}

func (d *TownDirectory) Loading() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loading
}
