package service

import (
	"context"
	"fmt"
	"sync"

	"projects/showcase/internal/catalog"
	"projects/showcase/internal/display"
	"projects/showcase/internal/domain"
	"projects/showcase/internal/fixture"
	"projects/showcase/internal/state"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// InitialSelection is applied to every catalog after loading. Catalogs whose
// schema lacks the sort key keep the default one.
type InitialSelection struct {
	Filter  domain.Tag
	SortKey domain.SortKey
}

// Service owns one independent controller per showcase category.
type Service struct {
	source      fixture.Source
	kinds       []domain.CatalogKind
	initial     InitialSelection
	controllers map[domain.CatalogKind]*state.Controller
}

func NewService(source fixture.Source, kinds []domain.CatalogKind, initial InitialSelection) *Service {
	return &Service{
		source:      source,
		kinds:       kinds,
		initial:     initial,
		controllers: make(map[domain.CatalogKind]*state.Controller, len(kinds)),
	}
}

// Load fetches every catalog in parallel. Either all catalogs load or
// Load returns the first error and the service stays empty.
func (s *Service) Load(ctx context.Context) error {
	if s.initial.Filter != domain.NoTag && !s.initial.Filter.Valid() {
		return domain.InvalidArgument("initial filter %q is not an SDG tag", s.initial.Filter)
	}
	if s.initial.SortKey != "" && !s.initial.SortKey.Valid() {
		return domain.InvalidArgument("initial sort key %q", s.initial.SortKey)
	}

	var (
		mu     sync.Mutex
		loaded = make(map[domain.CatalogKind]*state.Controller, len(s.kinds))
	)

	g, ctx := errgroup.WithContext(ctx)

	for _, kind := range s.kinds {
		g.Go(func() error {
			log.Infof("🔄 Loading catalog: %s", kind.GetCategoryName())

			items, err := s.source.LoadCatalog(ctx, kind)
			if err != nil {
				log.Errorf("❌ Failed to load %s: %v", kind, err)
				return fmt.Errorf("load %s: %w", kind, err)
			}

			c, err := catalog.New(kind, items)
			if err != nil {
				log.Errorf("❌ Invalid %s fixture: %v", kind, err)
				return err
			}

			ctrl := state.NewController(c)
			s.applyInitial(ctrl)

			mu.Lock()
			loaded[kind] = ctrl
			mu.Unlock()

			log.Infof("✅ Loaded %s: %d items", kind.GetCategoryName(), c.Len())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	s.controllers = loaded
	log.Infof("✅ Loaded all %d catalogs", len(loaded))
	return nil
}

func (s *Service) applyInitial(ctrl *state.Controller) {
	if s.initial.Filter != domain.NoTag {
		if err := ctrl.SetCategoryFilter(s.initial.Filter); err != nil {
			log.Warnf("⚠️ %s: %v", ctrl.Catalog().Kind(), err)
		}
	}
	if s.initial.SortKey != "" && ctrl.Catalog().Schema().Supports(s.initial.SortKey) {
		if err := ctrl.SetSortKey(s.initial.SortKey); err != nil {
			log.Warnf("⚠️ %s: %v", ctrl.Catalog().Kind(), err)
		}
	}
}

// Kinds returns the loaded categories in page order.
func (s *Service) Kinds() []domain.CatalogKind {
	out := make([]domain.CatalogKind, 0, len(s.controllers))
	for _, kind := range s.kinds {
		if _, ok := s.controllers[kind]; ok {
			out = append(out, kind)
		}
	}
	return out
}

func (s *Service) Controller(kind domain.CatalogKind) (*state.Controller, error) {
	ctrl, ok := s.controllers[kind]
	if !ok {
		return nil, domain.InvalidArgument("catalog %q is not loaded", kind)
	}
	return ctrl, nil
}

// Models builds the display model of every loaded category.
func (s *Service) Models() []display.Model {
	kinds := s.Kinds()
	models := make([]display.Model, 0, len(kinds))
	for _, kind := range kinds {
		models = append(models, display.Build(s.controllers[kind]))
	}
	return models
}
