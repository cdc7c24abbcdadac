/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bridge implements the command-correlation core shared by every
// façade: allocate a command handle, register the caller's future, invoke
// the native entry point and resolve the future exactly once when the
// callback arrives - or immediately, when the call is rejected
// synchronously. The native side runs operations on its own thread pool and
// delivers callbacks on arbitrary threads; the registry is the only shared
// state between the two worlds.
package bridge

import (
	"sync"

	"github.com/hyperledger/aries-framework-go/component/log"

	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

var logger = log.New("indy-sdk-go/bridge")

// Bridge correlates issued operations with native callbacks. Safe for
// concurrent use by any number of goroutines; callbacks may arrive on any
// thread at any time, including before the issuing call returns.
type Bridge struct {
	caller   native.Caller
	alloc    *allocator
	registry *registry

	closeMu sync.Mutex
	closed  bool
}

// New returns a Bridge issuing operations through the given native caller.
func New(caller native.Caller) *Bridge {
	return &Bridge{
		caller:   caller,
		alloc:    newAllocator(),
		registry: newRegistry(),
	}
}

// issue runs the full correlation sequence. The returned future resolves
// exactly once: from the callback path, from the synchronous-failure path,
// or from Close.
func (b *Bridge) issue(op string, shape resultShape, args ...interface{}) *future {
	// registration happens under closeMu so Close cannot drain between the
	// closed check and the registry insert, which would strand the future.
	b.closeMu.Lock()

	if b.closed {
		b.closeMu.Unlock()

		return failedFuture(indyerror.Shutdown("binding is closed"))
	}

	fut := newFuture()
	cmd := b.alloc.allocate()

	if err := b.registry.register(cmd, &pendingOp{op: op, shape: shape, fut: fut}); err != nil {
		b.closeMu.Unlock()
		b.alloc.release(cmd)
		fut.complete(nil, indyerror.Internal(err.Error()))

		return fut
	}

	b.closeMu.Unlock()

	code := b.caller.Call(op, cmd, b.OnCallback, args...)
	if code != indyerror.Success {
		// The native side rejected the call synchronously: the callback will
		// not fire, so take our own handle back. If a callback raced us and
		// already took it, the future is resolved and this is a no-op.
		if pending, ok := b.registry.take(cmd); ok {
			b.alloc.release(cmd)
			pending.fut.complete(nil, indyerror.Translate(code))
		}
	}

	return fut
}

// IssueEmpty issues an operation whose callback carries no payload.
func (b *Bridge) IssueEmpty(op string, args ...interface{}) *EmptyFuture {
	return &EmptyFuture{f: b.issue(op, shapeEmpty, args...)}
}

// IssueString issues an operation whose callback carries a single string.
func (b *Bridge) IssueString(op string, args ...interface{}) *StringFuture {
	return &StringFuture{f: b.issue(op, shapeString, args...)}
}

// IssuePair issues an operation whose callback carries two strings.
func (b *Bridge) IssuePair(op string, args ...interface{}) *PairFuture {
	return &PairFuture{f: b.issue(op, shapeStringPair, args...)}
}

// IssueHandle issues an operation whose callback carries a resource handle.
func (b *Bridge) IssueHandle(op string, args ...interface{}) *HandleFuture {
	return &HandleFuture{f: b.issue(op, shapeHandle, args...)}
}

// Pending reports the number of operations still waiting for a callback.
func (b *Bridge) Pending() int {
	return b.registry.size()
}

// Close drains the registry and fails every still-pending operation with a
// shutdown error so no caller is left waiting forever. The native protocol
// has no cancellation: in-flight native work keeps running, its eventual
// callbacks find no pending operation and are dropped. Close is idempotent.
func (b *Bridge) Close() error {
	b.closeMu.Lock()
	defer b.closeMu.Unlock()

	if b.closed {
		return nil
	}

	b.closed = true

	pending := b.registry.drain()
	for cmd, op := range pending {
		b.alloc.release(cmd)
		op.fut.complete(nil, indyerror.Shutdown("binding closed with operation still pending"))
	}

	if len(pending) > 0 {
		logger.Infof("failed %d pending operation(s) on close", len(pending))
	}

	return nil
}
