package service

import (
	"context"

	"gatepass/internal/layout"
)

// LayoutService wraps the single badge-layout document. Load returns nil
// when nothing was ever saved; callers substitute layout.Default.
type LayoutService interface {
	Save(ctx context.Context, doc *layout.Document) error
	Load(ctx context.Context) (*layout.Document, error)
}

// LayoutStore is the persistence the service delegates to.
type LayoutStore interface {
	Save(doc *layout.Document) error
	Load() (*layout.Document, error)
}

type layoutService struct {
	store LayoutStore
}

// NewLayoutService builds a LayoutService.
func NewLayoutService(store LayoutStore) LayoutService {
	return &layoutService{store: store}
}

func (s *layoutService) Save(_ context.Context, doc *layout.Document) error {
	return s.store.Save(doc)
}

func (s *layoutService) Load(_ context.Context) (*layout.Document, error) {
	return s.store.Load()
}
