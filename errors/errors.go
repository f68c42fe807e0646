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

// Package errors defines the sentinel errors returned by the function registry.
//
// Every mutating registry operation reports precondition violations through
// one of these values so that callers can branch with errors.Is instead of
// matching message text.
package errors

import "errors"

var (
	// ErrStoreClosed is returned when an operation is attempted on a store
	// that has been closed.
	ErrStoreClosed = errors.New("function store is closed")

	// ErrInvalidFunction is returned by Insert when the function record is
	// malformed: nil record, zero id or empty name.
	ErrInvalidFunction = errors.New("invalid function record")

	// ErrFunctionAlreadyExists is returned when a function with the same id
	// is already registered, or when Subscribe targets a name that is
	// already live in the store.
	ErrFunctionAlreadyExists = errors.New("function already exists")

	// ErrNameAlreadyTaken is returned by Insert when a live function with
	// the same name is already registered under a different id.
	ErrNameAlreadyTaken = errors.New("function name is already taken")

	// ErrFunctionNotRegistered is returned when Pin, Unpin or a pin query
	// references a function record that is not (or no longer) in the store.
	ErrFunctionNotRegistered = errors.New("function is not registered")

	// ErrFunctionPinned is returned by Delete while at least one holder is
	// still pinned to the function. The returned error carries the kind of
	// the first blocking holder.
	ErrFunctionPinned = errors.New("function is pinned")

	// ErrHolderAlreadyPinned is returned by Pin when the holder record is
	// already a member of a holder ring.
	ErrHolderAlreadyPinned = errors.New("holder is already pinned")

	// ErrHolderNotPinned is returned by Unpin when the holder is not a
	// member of the function's holder ring.
	ErrHolderNotPinned = errors.New("holder is not pinned to the function")

	// ErrSubscriptionActive is returned by Subscribe when the subscription
	// record is already registered for a name.
	ErrSubscriptionActive = errors.New("subscription is already registered")

	// ErrSubscriptionNotFound is returned by Unsubscribe when the
	// subscription is not registered for the given name.
	ErrSubscriptionNotFound = errors.New("subscription is not registered")

	// ErrReentrantCall is returned when Insert, Delete, Subscribe or
	// Unsubscribe targets a name whose subscriptions are currently firing.
	ErrReentrantCall = errors.New("reentrant call while subscriptions are firing")
)
