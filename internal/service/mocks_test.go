package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/travel-journal/internal/domain"
	"github.com/pkordes/travel-journal/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field; set only the ones your test needs.
// Calling an unset method panics, which fails the test loudly.

// fakeStore satisfies service.Transactor by handing the same mock repos to
// every transaction. txs counts how many transactions were opened.
type fakeStore struct {
	repos repo.Repos
	txs   int
}

func (f *fakeStore) InTx(_ context.Context, fn func(repo.Repos) error) error {
	f.txs++
	return fn(f.repos)
}

func newFakeStore(r repo.Repos) *fakeStore {
	return &fakeStore{repos: r}
}

// ---- TripRepo ---------------------------------------------------------------

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- DestinationRepo --------------------------------------------------------

type mockDestinationRepo struct {
	create       func(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	list         func(ctx context.Context) ([]domain.Destination, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error)
	update       func(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDestinationRepo) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	return m.create(ctx, dest)
}
func (m *mockDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	return m.list(ctx)
}
func (m *mockDestinationRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Destination, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockDestinationRepo) Update(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	return m.update(ctx, dest)
}
func (m *mockDestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.DestinationRepo = (*mockDestinationRepo)(nil)

// ---- ActivityRepo -----------------------------------------------------------

type mockActivityRepo struct {
	create              func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	getByID             func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	list                func(ctx context.Context) ([]domain.Activity, error)
	listByDestinationID func(ctx context.Context, destinationID uuid.UUID) ([]domain.Activity, error)
	listByTripID        func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	update              func(ctx context.Context, act domain.Activity) (domain.Activity, error)
	delete              func(ctx context.Context, id uuid.UUID) error
}

func (m *mockActivityRepo) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	return m.create(ctx, act)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, id)
}
func (m *mockActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	return m.list(ctx)
}
func (m *mockActivityRepo) ListByDestinationID(ctx context.Context, destinationID uuid.UUID) ([]domain.Activity, error) {
	return m.listByDestinationID(ctx, destinationID)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockActivityRepo) Update(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	return m.update(ctx, act)
}
func (m *mockActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

// ---- CategoryRepo / TagRepo -------------------------------------------------

type mockCategoryRepo struct {
	getOrCreate func(ctx context.Context, name string) (domain.Category, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.Category, error)
	getByName   func(ctx context.Context, name string) (domain.Category, error)
	list        func(ctx context.Context) ([]domain.Category, error)
}

func (m *mockCategoryRepo) GetOrCreate(ctx context.Context, name string) (domain.Category, error) {
	return m.getOrCreate(ctx, name)
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	return m.getByID(ctx, id)
}
func (m *mockCategoryRepo) GetByName(ctx context.Context, name string) (domain.Category, error) {
	return m.getByName(ctx, name)
}
func (m *mockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	return m.list(ctx)
}

var _ repo.CategoryRepo = (*mockCategoryRepo)(nil)

type mockTagRepo struct {
	getOrCreate func(ctx context.Context, name string) (domain.Tag, error)
	getByID     func(ctx context.Context, id uuid.UUID) (domain.Tag, error)
	list        func(ctx context.Context) ([]domain.Tag, error)
	listByTrip  func(ctx context.Context, tripID uuid.UUID) ([]domain.Tag, error)
}

func (m *mockTagRepo) GetOrCreate(ctx context.Context, name string) (domain.Tag, error) {
	return m.getOrCreate(ctx, name)
}
func (m *mockTagRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Tag, error) {
	return m.getByID(ctx, id)
}
func (m *mockTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	return m.list(ctx)
}
func (m *mockTagRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Tag, error) {
	return m.listByTrip(ctx, tripID)
}

var _ repo.TagRepo = (*mockTagRepo)(nil)

// ---- fixtures ---------------------------------------------------------------

// nameCategories is a CategoryRepo that resolves every name to a category with
// a fresh ID, counting calls per name.
func nameCategories(calls map[string]int) *mockCategoryRepo {
	return &mockCategoryRepo{
		getOrCreate: func(_ context.Context, name string) (domain.Category, error) {
			calls[name]++
			return domain.Category{ID: uuid.New(), Name: name}, nil
		},
	}
}

// nameTags is the TagRepo counterpart of nameCategories.
func nameTags(calls map[string]int) *mockTagRepo {
	return &mockTagRepo{
		getOrCreate: func(_ context.Context, name string) (domain.Tag, error) {
			calls[name]++
			return domain.Tag{ID: uuid.New(), Name: name}, nil
		},
	}
}

// existingTrip is a TripRepo whose GetByID finds only trip.
func existingTrip(trip domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			if id == trip.ID {
				return trip, nil
			}
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}
