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
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	gerrors "github.com/schemakit/funcreg/errors"
	"github.com/schemakit/funcreg/internal/ring"
	"github.com/schemakit/funcreg/internal/validation"
)

// HolderKind identifies the kind of component that pinned a function. The
// kind is reported back when a deletion is refused so that callers can tell
// the user what is blocking the removal.
type HolderKind int

const (
	// HolderKindConstraint marks a holder created by a constraint definition.
	HolderKindConstraint HolderKind = iota

	numHolderKinds
)

// holderKindNames holds the lowercase name of each kind.
var holderKindNames = [numHolderKinds]string{
	HolderKindConstraint: "constraint",
}

// String returns the lowercase name of the kind.
func (k HolderKind) String() string {
	if k < 0 || k >= numHolderKinds {
		return "unknown"
	}
	return holderKindNames[k]
}

// Holder records one external dependent of a function. While pinned, the
// holder is a member of the function's holder ring and blocks its deletion.
// A holder is a back-reference, never a claim of ownership. The zero value
// is ready for use with Pin.
type Holder struct {
	kind HolderKind
	fn   *Function
	node *ring.Node[*Holder]
}

// Kind returns the kind the holder was pinned with. Meaningful only while
// the holder is pinned.
func (h *Holder) Kind() HolderKind {
	return h.kind
}

// Pinned returns true while the holder is a member of a holder ring.
func (h *Holder) Pinned() bool {
	return h.node != nil
}

// Pin adds the holder to the function's holder set, tagging it with kind.
// While at least one holder remains, Delete refuses to remove the function.
func (s *Store) Pin(fn *Function, h *Holder, kind HolderKind) error {
	if !s.started.Load() {
		return gerrors.ErrStoreClosed
	}
	if err := validation.New(validation.FailFast()).
		AddAssertion(h != nil, "holder is required").
		AddAssertion(kind >= 0 && kind < numHolderKinds, "holder kind is unknown").
		Validate(); err != nil {
		return err
	}
	if !s.registered(fn) {
		return gerrors.ErrFunctionNotRegistered
	}
	if h.Pinned() {
		return gerrors.ErrHolderAlreadyPinned
	}

	h.kind = kind
	h.fn = fn
	h.node = fn.holders.PushBack(h)
	s.logger.Debugf("pinned function fid=%d name=%q as %s", fn.fid, fn.name, kind)
	return nil
}

// Unpin removes the holder from the function's holder set. When the set
// becomes empty the function is eligible for deletion again.
func (s *Store) Unpin(fn *Function, h *Holder) error {
	if !s.started.Load() {
		return gerrors.ErrStoreClosed
	}
	if !s.registered(fn) {
		return gerrors.ErrFunctionNotRegistered
	}
	if h == nil || !h.Pinned() || h.fn != fn {
		return gerrors.ErrHolderNotPinned
	}

	fn.holders.Remove(h.node)
	h.node = nil
	h.fn = nil
	s.logger.Debugf("unpinned function fid=%d name=%q", fn.fid, fn.name)
	return nil
}

// IsPinned reports whether the function currently has holders. When it does,
// the kind of the first holder is returned for diagnostics.
func (s *Store) IsPinned(fn *Function) (bool, HolderKind) {
	if !s.registered(fn) || fn.holders.IsEmpty() {
		return false, HolderKind(0)
	}
	return true, fn.holders.Front().Value.kind
}

// PinnedKinds returns the distinct kinds of all holders currently pinning
// the function, in ascending kind order.
func (s *Store) PinnedKinds(fn *Function) []HolderKind {
	if !s.registered(fn) {
		return nil
	}
	kinds := mapset.NewThreadUnsafeSet[HolderKind]()
	for _, h := range fn.holders.Values() {
		kinds.Add(h.kind)
	}
	out := kinds.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// pinRefusal builds the error returned when Delete is blocked by holders.
func pinRefusal(fn *Function) error {
	first := fn.holders.Front().Value
	return fmt.Errorf("%w: function %q is in use by a %s", gerrors.ErrFunctionPinned, fn.name, first.kind)
}
