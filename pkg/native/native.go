/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package native declares the boundary with libindy. The binding core never
// links the library directly; it reaches every entry point through the
// Caller interface, addressed by the C symbol name. Production callers wrap
// the shared library, test callers script replies on their own goroutines.
package native

import (
	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
)

// CommandHandle correlates an issued operation with its eventual callback.
// It is opaque to the native side and unique among in-flight operations.
type CommandHandle int32

// WalletHandle identifies an opened wallet on the native side.
type WalletHandle int32

// PoolHandle identifies an opened pool ledger connection on the native side.
type PoolHandle int32

// Callback mirrors the libindy callback typedefs (indy_empty_cb,
// indy_str_cb, indy_str_str_cb, indy_handle_cb): the command handle, the
// status code, then zero or more result fields. It is invoked exactly once
// per command handle, on an arbitrary thread, unless the call itself
// returned a non-zero immediate status.
type Callback func(cmd CommandHandle, code indyerror.Code, values ...interface{})

// Caller invokes a native entry point identified by its C symbol name with
// the given command handle, completion callback and operation arguments
// (primitives, strings and byte slices only). The returned code is the
// immediate status: non-zero means the operation was rejected synchronously
// and the callback will not fire.
type Caller interface {
	Call(op string, cmd CommandHandle, cb Callback, args ...interface{}) indyerror.Code
}
