/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bridge

import (
	"math"
	"sync"

	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

// allocator issues command handles unique among all currently-live handles.
// Released handles are recycled through a free list, so the counter only
// moves when the free list is empty.
type allocator struct {
	mu   sync.Mutex
	next native.CommandHandle
	free []native.CommandHandle
}

func newAllocator() *allocator {
	return &allocator{}
}

func (a *allocator) allocate() native.CommandHandle {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]

		return h
	}

	if a.next == math.MaxInt32 {
		// Practically unreachable: would need 2^31 live operations.
		panic("bridge: command handle space exhausted")
	}

	a.next++

	return a.next
}

func (a *allocator) release(h native.CommandHandle) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.free = append(a.free, h)
}
