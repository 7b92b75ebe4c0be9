package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/repo"
)

// ReferenceService resolves and lists the shared Category and Tag records.
type ReferenceService struct {
	store Transactor
}

// NewReferenceService constructs a ReferenceService backed by the provided store.
func NewReferenceService(store Transactor) *ReferenceService {
	return &ReferenceService{store: store}
}

// GetOrCreateCategory returns the category named exactly name, creating it on
// first use. Calling it twice with the same name yields the same ID.
func (s *ReferenceService) GetOrCreateCategory(ctx context.Context, name string) (domain.Category, error) {
	var c domain.Category
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		c, err = r.Categories.GetOrCreate(ctx, name)
		return err
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("service.ReferenceService.GetOrCreateCategory: %w", err)
	}
	return c, nil
}

// GetOrCreateTag returns the tag named exactly name, creating it on first use.
func (s *ReferenceService) GetOrCreateTag(ctx context.Context, name string) (domain.Tag, error) {
	var t domain.Tag
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		t, err = r.Tags.GetOrCreate(ctx, name)
		return err
	})
	if err != nil {
		return domain.Tag{}, fmt.Errorf("service.ReferenceService.GetOrCreateTag: %w", err)
	}
	return t, nil
}

// Categories returns all categories ordered by name.
func (s *ReferenceService) Categories(ctx context.Context) ([]domain.Category, error) {
	var cs []domain.Category
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		cs, err = r.Categories.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.ReferenceService.Categories: %w", err)
	}
	if cs == nil {
		return []domain.Category{}, nil
	}
	return cs, nil
}

// Tags returns all tags ordered by name.
func (s *ReferenceService) Tags(ctx context.Context) ([]domain.Tag, error) {
	var ts []domain.Tag
	err := s.store.InTx(ctx, func(r repo.Repos) error {
		var err error
		ts, err = r.Tags.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.ReferenceService.Tags: %w", err)
	}
	if ts == nil {
		return []domain.Tag{}, nil
	}
	return ts, nil
}
