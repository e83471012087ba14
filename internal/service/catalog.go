package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"jobadmin/internal/backend"
	"jobadmin/internal/model"
)

// CatalogService manages the lookup lists. Only industries, locations, categories and skills
// can be edited; the rest are read-only.
type CatalogService interface {
	List(ctx context.Context, kind model.CatalogKind) ([]model.CatalogItem, error)
	Create(ctx context.Context, kind model.CatalogKind, in model.CatalogInput) error
	Update(ctx context.Context, kind model.CatalogKind, id int64, in model.CatalogInput) error
	Delete(ctx context.Context, kind model.CatalogKind, id int64) error
}

type catalogService struct {
	api backend.API
}

func NewCatalogService(api backend.API) CatalogService {
	return &catalogService{api: api}
}

func (s *catalogService) List(ctx context.Context, kind model.CatalogKind) ([]model.CatalogItem, error) {
	if _, ok := model.ParseCatalogKind(string(kind)); !ok {
		return nil, invalid(fmt.Sprintf("Unknown catalog %q", kind))
	}
	return s.api.ListCatalog(ctx, kind)
}

func (s *catalogService) Create(ctx context.Context, kind model.CatalogKind, in model.CatalogInput) error {
	if err := editable(kind); err != nil {
		return err
	}
	if strings.TrimSpace(in.Name) == "" {
		return invalid("Name is required")
	}
	if kind != model.Locations {
		in.State, in.Country = "", ""
	}
	return s.api.CreateCatalogItem(ctx, kind, in)
}

func (s *catalogService) Update(ctx context.Context, kind model.CatalogKind, id int64, in model.CatalogInput) error {
	if err := editable(kind); err != nil {
		return err
	}
	if strings.TrimSpace(in.Name) == "" {
		return invalid("Name is required")
	}
	return s.api.UpdateCatalogItem(ctx, kind, id, in)
}

func (s *catalogService) Delete(ctx context.Context, kind model.CatalogKind, id int64) error {
	if err := editable(kind); err != nil {
		return err
	}
	return s.api.DeleteCatalogItem(ctx, kind, id)
}

func editable(kind model.CatalogKind) error {
	if !kind.Editable() {
		return fmt.Errorf("%w: %s", ErrReadOnlyCatalog, kind)
	}
	return nil
}

// loadCatalogs fetches several catalogs in parallel. The first failure cancels the rest.
func loadCatalogs(ctx context.Context, api backend.API, kinds ...model.CatalogKind) (map[model.CatalogKind][]model.CatalogItem, error) {
	results := make([][]model.CatalogItem, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			items, err := api.ListCatalog(gctx, kind)
			if err != nil {
				return fmt.Errorf("load %s: %w", kind, err)
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[model.CatalogKind][]model.CatalogItem, len(kinds))
	for i, kind := range kinds {
		out[kind] = results[i]
	}
	return out, nil
}

func sortByOrder(items []model.CatalogItem) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
}
