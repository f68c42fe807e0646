// MIT License
//
// Copyright (c) 2024-2026 Schemakit Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package registry implements an in-memory function registry with
// reference-counted pinning and name-based subscriptions.
//
// The Store indexes externally owned function records by identifier and by
// name. Holders pin a function to block its deletion while they depend on
// it; subscriptions fire synchronously, exactly once, when a function with
// the awaited name is inserted.
package registry

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	gerrors "github.com/schemakit/funcreg/errors"
	"github.com/schemakit/funcreg/internal/ring"
	"github.com/schemakit/funcreg/internal/validation"
	"github.com/schemakit/funcreg/log"
)

// Store is the single source of truth for which functions exist. It owns the
// identifier and name indices, the per-function holder sets and the pending
// name subscriptions.
//
// The store performs no internal locking: it is designed for a cooperative,
// single-threaded execution model in which callers serialize all mutating
// calls, typically under a surrounding schema-change boundary. Only the
// lifecycle state is atomic, because New and Close may run on a different
// goroutine than steady-state operations.
type Store struct {
	logger log.Logger

	byID          map[FID]*Function
	byName        map[string]*Function
	subscriptions map[string]*ring.Ring[*Subscription]

	// firing tracks names whose subscriptions are currently being delivered;
	// re-entering the store for such a name is refused.
	firing mapset.Set[string]

	started *atomic.Bool
}

// New creates a function store.
func New(opts ...Option) *Store {
	s := &Store{
		logger:        log.DefaultLogger,
		byID:          make(map[FID]*Function),
		byName:        make(map[string]*Function),
		subscriptions: make(map[string]*ring.Ring[*Subscription]),
		firing:        mapset.NewThreadUnsafeSet[string](),
		started:       atomic.NewBool(true),
	}
	for _, opt := range opts {
		opt.Apply(s)
	}
	return s
}

// Insert adds the function to both indices and then fires and consumes every
// pending subscription for its name, synchronously, before returning.
//
// The function identifier and name must both be unused; the record stays
// owned by the caller.
func (s *Store) Insert(fn *Function) error {
	if !s.started.Load() {
		return gerrors.ErrStoreClosed
	}
	if fn == nil {
		return gerrors.ErrInvalidFunction
	}
	if err := validation.New(validation.FailFast()).
		AddAssertion(fn.fid != 0, "function id is required").
		AddAssertion(len(fn.name) != 0, "function name is required").
		Validate(); err != nil {
		return multierr.Append(gerrors.ErrInvalidFunction, err)
	}
	if s.firing.Contains(fn.name) {
		return gerrors.ErrReentrantCall
	}
	if _, ok := s.byID[fn.fid]; ok {
		return fmt.Errorf("%w: fid=%d", gerrors.ErrFunctionAlreadyExists, fn.fid)
	}
	if _, ok := s.byName[fn.name]; ok {
		return fmt.Errorf("%w: name=%q", gerrors.ErrNameAlreadyTaken, fn.name)
	}

	s.byID[fn.fid] = fn
	s.byName[fn.name] = fn
	fn.holders = ring.New[*Holder]()
	s.logger.Debugf("inserted function fid=%d name=%q", fn.fid, fn.name)

	s.fireSubscriptions(fn.name, fn)
	return nil
}

// Delete removes the function with the given identifier from both indices.
// Deleting an absent identifier is a no-op. Deletion is refused with
// ErrFunctionPinned while any holder remains; callers are expected to have
// checked IsPinned beforehand. The record itself is not freed, ownership
// reverts to the caller.
func (s *Store) Delete(fid FID) error {
	if !s.started.Load() {
		return gerrors.ErrStoreClosed
	}
	fn, ok := s.byID[fid]
	if !ok {
		return nil
	}
	if s.firing.Contains(fn.name) {
		return gerrors.ErrReentrantCall
	}
	if !fn.holders.IsEmpty() {
		s.logger.Warnf("refused to delete function fid=%d name=%q: still pinned", fn.fid, fn.name)
		return pinRefusal(fn)
	}

	delete(s.byID, fn.fid)
	delete(s.byName, fn.name)
	fn.holders = nil
	s.logger.Debugf("deleted function fid=%d name=%q", fn.fid, fn.name)
	return nil
}

// GetByID returns the function registered under the given identifier.
func (s *Store) GetByID(fid FID) (*Function, bool) {
	fn, ok := s.byID[fid]
	return fn, ok
}

// GetByName returns the function registered under the given exact name.
func (s *Store) GetByName(name string) (*Function, bool) {
	fn, ok := s.byName[name]
	return fn, ok
}

// Size returns the number of registered functions.
func (s *Store) Size() int {
	return len(s.byID)
}

// Functions returns the registered functions in ascending identifier order.
func (s *Store) Functions() []*Function {
	out := make([]*Function, 0, len(s.byID))
	for _, fn := range s.byID {
		out = append(out, fn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].fid < out[j].fid })
	return out
}

// Close tears the store down. It is a process-lifecycle bookend: the caller
// is expected to have deleted all functions and drained all subscriptions
// first. Leftover pinned functions and pending subscriptions are reported as
// an aggregated error; the indices are cleared regardless. Closing an
// already closed store is a no-op.
func (s *Store) Close() error {
	if !s.started.CompareAndSwap(true, false) {
		return nil
	}

	var violations error
	for _, fn := range s.Functions() {
		if !fn.holders.IsEmpty() {
			violations = multierr.Append(violations,
				fmt.Errorf("function %q (fid=%d) is still pinned by a %s",
					fn.name, fn.fid, fn.holders.Front().Value.kind))
		}
		fn.holders = nil
	}

	names := make([]string, 0, len(s.subscriptions))
	for name := range s.subscriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		violations = multierr.Append(violations,
			fmt.Errorf("%d subscription(s) still pending for name %q",
				s.subscriptions[name].Len(), name))
	}

	s.byID = make(map[FID]*Function)
	s.byName = make(map[string]*Function)
	s.subscriptions = make(map[string]*ring.Ring[*Subscription])
	s.logger.Debug("function store closed")
	return violations
}

// registered reports whether fn is the record currently indexed under its id.
func (s *Store) registered(fn *Function) bool {
	if fn == nil || fn.holders == nil {
		return false
	}
	return s.byID[fn.fid] == fn
}
