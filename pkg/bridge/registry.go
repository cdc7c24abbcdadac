/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bridge

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

// pendingOp is an in-flight operation: the single-shot future the caller is
// waiting on plus the result shape the eventual callback payload must match.
// Owned exclusively by the registry from register until take.
type pendingOp struct {
	op    string
	shape resultShape
	fut   *future
}

// registry maps live command handles to their pending operations. It is the
// only shared mutable state in the core; register and take are the only ways
// in and out, so no two goroutines can observe the same handle as present
// during a take.
type registry struct {
	mu      sync.Mutex
	pending map[native.CommandHandle]*pendingOp
}

func newRegistry() *registry {
	return &registry{pending: make(map[native.CommandHandle]*pendingOp)}
}

// register stores the pending operation under its handle. A duplicate handle
// is a programming error (the allocator guarantees uniqueness among live
// handles) and is rejected rather than overwritten.
func (r *registry) register(h native.CommandHandle, op *pendingOp) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[h]; ok {
		return errors.Errorf("command handle %d already registered", h)
	}

	r.pending[h] = op

	return nil
}

// take atomically removes and returns the pending operation for the handle.
// The absent case is the defense against late and duplicate callbacks: the
// second delivery finds nothing and becomes a no-op.
func (r *registry) take(h native.CommandHandle) (*pendingOp, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op, ok := r.pending[h]
	if ok {
		delete(r.pending, h)
	}

	return op, ok
}

// drain removes and returns every pending operation, keyed by handle. Used
// on shutdown so outstanding callers are failed rather than left hanging.
func (r *registry) drain() map[native.CommandHandle]*pendingOp {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := r.pending
	r.pending = make(map[native.CommandHandle]*pendingOp)

	return pending
}

func (r *registry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pending)
}
