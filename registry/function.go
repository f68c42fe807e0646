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
	"github.com/schemakit/funcreg/internal/ring"
)

// FID is the numeric identifier of a function record. Zero is reserved and
// never a valid identifier.
type FID uint32

// Function is a named metadata record indexed by the Store. The record is
// owned by the caller: the store only indexes it and never frees or mutates
// its identity. The name may carry arbitrary bytes. A record may be
// registered with at most one store at a time.
type Function struct {
	fid  FID
	name string

	// holders is non-nil exactly while the function is registered in a store.
	holders *ring.Ring[*Holder]
}

// NewFunction creates a function record with the given identifier and name.
func NewFunction(fid FID, name string) *Function {
	return &Function{
		fid:  fid,
		name: name,
	}
}

// FID returns the function identifier.
func (f *Function) FID() FID {
	return f.fid
}

// Name returns the function name.
func (f *Function) Name() string {
	return f.name
}
