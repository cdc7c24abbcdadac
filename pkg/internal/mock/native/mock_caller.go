/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mocknative is a scripted in-process stand-in for libindy. Replies
// are delivered from freshly spawned goroutines after a randomized delay, so
// tests exercise the same arbitrary-thread callback behavior the real
// library exhibits.
package mocknative

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

// Handler computes a scripted reply from the recorded call arguments.
type Handler func(cmd native.CommandHandle, args []interface{}) (indyerror.Code, []interface{})

// Call records one invocation of the native boundary.
type Call struct {
	Op   string
	Cmd  native.CommandHandle
	Args []interface{}
}

type script struct {
	immediate  indyerror.Code
	code       indyerror.Code
	values     []interface{}
	handler    Handler
	duplicates int
	silent     bool
}

// Caller implements native.Caller with scripted per-operation behavior.
// Unscripted operations succeed with an empty payload.
type Caller struct {
	mu       sync.Mutex
	scripts  map[string]*script
	calls    []Call
	maxDelay time.Duration
	rnd      *rand.Rand
}

// NewCaller returns a stub caller with a small default callback delay.
func NewCaller() *Caller {
	return &Caller{
		scripts:  make(map[string]*script),
		maxDelay: 5 * time.Millisecond,
		//nolint:gosec // math/rand is fine for jitter in a test stub
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetMaxDelay bounds the random delay before a callback is delivered.
func (c *Caller) SetMaxDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maxDelay = d
}

func (c *Caller) scriptFor(op string) *script {
	s, ok := c.scripts[op]
	if !ok {
		s = &script{}
		c.scripts[op] = s
	}

	return s
}

// ScriptReply makes op succeed with the given callback payload.
func (c *Caller) ScriptReply(op string, values ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scriptFor(op).values = values
}

// ScriptError makes op fail asynchronously with the given status code.
func (c *Caller) ScriptError(op string, code indyerror.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scriptFor(op).code = code
}

// ScriptImmediate makes op fail synchronously: Call returns the code and no
// callback is delivered.
func (c *Caller) ScriptImmediate(op string, code indyerror.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scriptFor(op).immediate = code
}

// ScriptHandler computes the reply for op from the call arguments.
func (c *Caller) ScriptHandler(op string, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scriptFor(op).handler = h
}

// ScriptDuplicates delivers the callback for op n extra times. The binding
// must drop every delivery after the first.
func (c *Caller) ScriptDuplicates(op string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scriptFor(op).duplicates = n
}

// ScriptNoReply accepts calls to op but never delivers a callback, leaving
// the operation pending forever. Used to test shutdown draining.
func (c *Caller) ScriptNoReply(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scriptFor(op).silent = true
}

// Calls returns a copy of every recorded invocation, in call order.
func (c *Caller) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()

	calls := make([]Call, len(c.calls))
	copy(calls, c.calls)

	return calls
}

// CallsTo returns the recorded invocations of one operation.
func (c *Caller) CallsTo(op string) []Call {
	c.mu.Lock()
	defer c.mu.Unlock()

	var calls []Call

	for _, call := range c.calls {
		if call.Op == op {
			calls = append(calls, call)
		}
	}

	return calls
}

// Call records the invocation and schedules the scripted callback on a new
// goroutine after a random delay.
func (c *Caller) Call(op string, cmd native.CommandHandle, cb native.Callback,
	args ...interface{}) indyerror.Code {
	c.mu.Lock()

	c.calls = append(c.calls, Call{Op: op, Cmd: cmd, Args: args})

	s := c.scripts[op]
	if s == nil {
		s = &script{}
	}

	if s.immediate != indyerror.Success {
		c.mu.Unlock()

		return s.immediate
	}

	if s.silent {
		c.mu.Unlock()

		return indyerror.Success
	}

	code := s.code
	values := s.values
	handler := s.handler
	duplicates := s.duplicates
	delay := time.Duration(0)

	if c.maxDelay > 0 {
		delay = time.Duration(c.rnd.Int63n(int64(c.maxDelay)))
	}
	c.mu.Unlock()

	if handler != nil {
		code, values = handler(cmd, args)
	}

	go func() {
		if delay > 0 {
			time.Sleep(delay)
		}

		for i := 0; i <= duplicates; i++ {
			if code != indyerror.Success {
				cb(cmd, code)
			} else {
				cb(cmd, code, values...)
			}
		}
	}()

	return indyerror.Success
}
