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

package registry

import (
	"github.com/google/uuid"

	gerrors "github.com/schemakit/funcreg/errors"
	"github.com/schemakit/funcreg/internal/ring"
	"github.com/schemakit/funcreg/internal/validation"
)

// Callback is invoked when a function with the subscribed name is inserted.
// The subscription has already been detached from its ring when the callback
// runs, so the callback is free to discard or reuse the subscription record.
type Callback func(sub *Subscription, fn *Function)

// Subscription registers interest in the insertion of a function with a
// given name, possibly before any such function exists. Each subscription
// fires at most once and is consumed by the firing.
type Subscription struct {
	id       string
	name     string
	callback Callback
	node     *ring.Node[*Subscription]
}

// NewSubscription creates an idle subscription record.
func NewSubscription() *Subscription {
	return &Subscription{
		id: uuid.NewString(),
	}
}

// ID returns the unique identifier of the subscription.
func (s *Subscription) ID() string {
	return s.id
}

// Name returns the name the subscription is registered for, or the empty
// string when the subscription is idle.
func (s *Subscription) Name() string {
	return s.name
}

// Active returns true while the subscription is registered and has not fired.
func (s *Subscription) Active() bool {
	return s.node != nil
}

// Subscribe registers the subscription for the given name. The callback runs
// synchronously, inside a future Insert of a function with that exact name.
//
// A name that is already live in the store is rejected with
// ErrFunctionAlreadyExists: callers wanting immediate delivery are expected
// to consult GetByName first and act on the existing function themselves.
func (s *Store) Subscribe(name string, sub *Subscription, callback Callback) error {
	if !s.started.Load() {
		return gerrors.ErrStoreClosed
	}
	if err := validation.New(validation.FailFast()).
		AddAssertion(len(name) != 0, "name is required").
		AddAssertion(sub != nil, "subscription is required").
		AddAssertion(callback != nil, "callback is required").
		Validate(); err != nil {
		return err
	}
	if s.firing.Contains(name) {
		return gerrors.ErrReentrantCall
	}
	if _, ok := s.byName[name]; ok {
		return gerrors.ErrFunctionAlreadyExists
	}
	if sub.Active() {
		return gerrors.ErrSubscriptionActive
	}

	r, ok := s.subscriptions[name]
	if !ok {
		r = ring.New[*Subscription]()
		s.subscriptions[name] = r
	}
	sub.name = name
	sub.callback = callback
	sub.node = r.PushBack(sub)
	s.logger.Debugf("subscription %s registered for name=%q", sub.id, name)
	return nil
}

// Unsubscribe removes a subscription that has not fired yet.
func (s *Store) Unsubscribe(name string, sub *Subscription) error {
	if !s.started.Load() {
		return gerrors.ErrStoreClosed
	}
	if s.firing.Contains(name) {
		return gerrors.ErrReentrantCall
	}
	r, ok := s.subscriptions[name]
	if !ok || sub == nil || !sub.Active() || sub.name != name {
		return gerrors.ErrSubscriptionNotFound
	}

	r.Remove(sub.node)
	sub.node = nil
	sub.name = ""
	sub.callback = nil
	if r.IsEmpty() {
		delete(s.subscriptions, name)
	}
	s.logger.Debugf("subscription %s removed for name=%q", sub.id, name)
	return nil
}

// PendingSubscriptions returns the number of subscriptions currently
// registered for the given name.
func (s *Store) PendingSubscriptions(name string) int {
	if r, ok := s.subscriptions[name]; ok {
		return r.Len()
	}
	return 0
}

// fireSubscriptions delivers the newly inserted function to every
// subscription registered for its name, in registration order, and consumes
// them. Each subscription is detached before its callback runs so the
// callback may free or reuse the record. Re-entering the store for the same
// name from inside a callback is refused with ErrReentrantCall.
func (s *Store) fireSubscriptions(name string, fn *Function) {
	r, ok := s.subscriptions[name]
	if !ok {
		return
	}

	s.firing.Add(name)
	defer s.firing.Remove(name)

	for {
		node := r.Front()
		if node == nil {
			break
		}
		sub := node.Value
		r.Remove(node)
		callback := sub.callback
		sub.node = nil
		sub.name = ""
		sub.callback = nil
		s.logger.Debugf("subscription %s firing for name=%q fid=%d", sub.id, name, fn.fid)
		callback(sub, fn)
	}
	delete(s.subscriptions, name)
}
