package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/pkg/e"
)

// fakeStore - хранилище в памяти; WithTx сериализует транзакции, как advisory lock в БД
type fakeStore struct {
	mu      sync.Mutex
	nextRaw int64
	nextID  int64
	raws    []models.RawSignal
	outages map[int64]*models.Outage

	// raceInsert вставляется перед первой Create и вызывает нарушение уникальности
	raceInsert *models.Outage
	rawErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{outages: make(map[int64]*models.Outage)}
}

func (f *fakeStore) SaveRawSignal(_ context.Context, raw *models.RawSignal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rawErr != nil {
		return f.rawErr
	}
	f.nextRaw++
	raw.ID = f.nextRaw
	f.raws = append(f.raws, *raw)
	return nil
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(ctx context.Context, tx OutageTx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx, &fakeTx{s: f})
}

func (f *fakeStore) rows() []models.Outage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Outage, 0, len(f.outages))
	for id := int64(1); id <= f.nextID; id++ {
		if o, ok := f.outages[id]; ok {
			out = append(out, *o)
		}
	}
	return out
}

type fakeTx struct {
	s *fakeStore
}

func (t *fakeTx) LockIncidentKey(context.Context, int64, string) error { return nil }

func (t *fakeTx) FindByIncidentKey(_ context.Context, operatorID int64, key string) (*models.Outage, error) {
	for _, o := range t.s.outages {
		if o.OperatorID == operatorID && o.IncidentKey != nil && *o.IncidentKey == key {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (t *fakeTx) Create(_ context.Context, o *models.Outage) error {
	if t.s.raceInsert != nil {
		t.s.nextID++
		rival := *t.s.raceInsert
		rival.ID = t.s.nextID
		t.s.outages[rival.ID] = &rival
		t.s.raceInsert = nil
		return fmt.Errorf("repository: create outage: %w", e.ErrUniqueViolation)
	}
	if o.IncidentKey != nil {
		if existing, _ := t.FindByIncidentKey(context.Background(), o.OperatorID, *o.IncidentKey); existing != nil {
			return fmt.Errorf("repository: create outage: %w", e.ErrUniqueViolation)
		}
	}
	t.s.nextID++
	o.ID = t.s.nextID
	cp := *o
	t.s.outages[o.ID] = &cp
	return nil
}

func (t *fakeTx) Update(_ context.Context, o *models.Outage) error {
	if _, ok := t.s.outages[o.ID]; !ok {
		return fmt.Errorf("repository: update outage %d: %w", o.ID, e.ErrNotFound)
	}
	cp := *o
	t.s.outages[o.ID] = &cp
	return nil
}
