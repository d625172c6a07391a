// Package memory is an in-process repository.Store. Transactions hold the
// store lock and restore a snapshot when the callback fails.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"mptransport/models"
	"mptransport/repository"
)

type state struct {
	records      map[string]models.TransportRecord
	challans     map[string]models.Challan
	crossings    map[string]models.CrossingStatement
	customers    map[string]models.Customer
	transporters map[string]models.Transporter
	users        map[int64]models.User
	lastUserID   int64
	payments     map[string]models.Payment
	statuses     map[string]models.Status
	counters     map[string]int64
	profiles     []models.CompanyProfile
}

func newState() *state {
	return &state{
		records:      map[string]models.TransportRecord{},
		challans:     map[string]models.Challan{},
		crossings:    map[string]models.CrossingStatement{},
		customers:    map[string]models.Customer{},
		transporters: map[string]models.Transporter{},
		users:        map[int64]models.User{},
		payments:     map[string]models.Payment{},
		statuses:     map[string]models.Status{},
		counters:     map[string]int64{},
	}
}

// clone copies the maps. Stored values are never mutated in place, so
// sharing their slices is safe.
func (s *state) clone() *state {
	return &state{
		records:      maps.Clone(s.records),
		challans:     maps.Clone(s.challans),
		crossings:    maps.Clone(s.crossings),
		customers:    maps.Clone(s.customers),
		transporters: maps.Clone(s.transporters),
		users:        maps.Clone(s.users),
		lastUserID:   s.lastUserID,
		payments:     maps.Clone(s.payments),
		statuses:     maps.Clone(s.statuses),
		counters:     maps.Clone(s.counters),
		profiles:     slices.Clone(s.profiles),
	}
}

type Store struct {
	mu sync.Mutex
	st *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) Repos() repository.Repos {
	return s.repos(handle{store: s})
}

func (s *Store) WithTx(ctx context.Context, fn func(context.Context, repository.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, s.repos(handle{store: s, inTx: true})); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) repos(h handle) repository.Repos {
	return repository.Repos{
		TransportRecords: &transportRecordRepo{h},
		Challans:         &challanRepo{h},
		Crossings:        &crossingRepo{h},
		Customers:        &customerRepo{h},
		Transporters:     &transporterRepo{h},
		Users:            &userRepo{h},
		Payments:         &paymentRepo{h},
		Statuses:         &statusRepo{h},
		Sequences:        &sequenceRepo{h},
		CompanyProfiles:  &companyProfileRepo{h},
	}
}

// handle runs repository calls against the current state, taking the
// store lock unless it is already held by a transaction.
type handle struct {
	store *Store
	inTx  bool
}

func (h handle) read(fn func(st *state)) {
	if !h.inTx {
		h.store.mu.Lock()
		defer h.store.mu.Unlock()
	}
	fn(h.store.st)
}

func (h handle) write(fn func(st *state) error) error {
	var err error
	h.read(func(st *state) { err = fn(st) })
	return err
}
