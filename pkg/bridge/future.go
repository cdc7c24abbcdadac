/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bridge

import (
	"context"
	"sync"
)

// future is a single-assignment completion sink. complete wins exactly once;
// every later call is a no-op. Waiting does not retract the underlying
// native operation - a context cancellation only abandons the wait.
type future struct {
	done chan struct{}
	once sync.Once
	vals []interface{}
	err  error
}

func newFuture() *future {
	return &future{done: make(chan struct{})}
}

func failedFuture(err error) *future {
	f := newFuture()
	f.complete(nil, err)

	return f
}

func (f *future) complete(vals []interface{}, err error) {
	f.once.Do(func() {
		f.vals = vals
		f.err = err
		close(f.done)
	})
}

func (f *future) wait(ctx context.Context) ([]interface{}, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.done:
		return f.vals, f.err
	}
}

// EmptyFuture is the pending result of an operation whose callback carries
// no payload (indy_empty_cb).
type EmptyFuture struct {
	f *future
}

// Wait blocks until the operation completes or the context is done.
func (e *EmptyFuture) Wait(ctx context.Context) error {
	_, err := e.f.wait(ctx)

	return err
}

// StringFuture is the pending result of an operation whose callback carries
// a single string (indy_str_cb). The string may be a JSON document; callers
// that need structure decode it themselves.
type StringFuture struct {
	f *future
}

// Get blocks until the operation completes or the context is done.
func (s *StringFuture) Get(ctx context.Context) (string, error) {
	vals, err := s.f.wait(ctx)
	if err != nil {
		return "", err
	}

	return vals[0].(string), nil
}

// PairFuture is the pending result of an operation whose callback carries
// two strings (indy_str_str_cb), e.g. a DID and its verkey.
type PairFuture struct {
	f *future
}

// Get blocks until the operation completes or the context is done.
func (p *PairFuture) Get(ctx context.Context) (string, string, error) {
	vals, err := p.f.wait(ctx)
	if err != nil {
		return "", "", err
	}

	return vals[0].(string), vals[1].(string), nil
}

// HandleFuture is the pending result of an operation whose callback carries
// a native resource handle (indy_handle_cb), e.g. open-wallet or open-pool.
type HandleFuture struct {
	f *future
}

// Get blocks until the operation completes or the context is done.
func (h *HandleFuture) Get(ctx context.Context) (int32, error) {
	vals, err := h.f.wait(ctx)
	if err != nil {
		return 0, err
	}

	return vals[0].(int32), nil
}

// FailedEmpty returns an already-failed EmptyFuture. Used by façades when
// local validation fails before a command handle is ever allocated.
func FailedEmpty(err error) *EmptyFuture {
	return &EmptyFuture{f: failedFuture(err)}
}

// FailedString returns an already-failed StringFuture.
func FailedString(err error) *StringFuture {
	return &StringFuture{f: failedFuture(err)}
}

// FailedPair returns an already-failed PairFuture.
func FailedPair(err error) *PairFuture {
	return &PairFuture{f: failedFuture(err)}
}

// FailedHandle returns an already-failed HandleFuture.
func FailedHandle(err error) *HandleFuture {
	return &HandleFuture{f: failedFuture(err)}
}
