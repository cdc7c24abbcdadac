/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package indysdk is a Go binding for libindy (https://github.com/hyperledger/indy-sdk).
//
// Packages for end developer usage
//
// pkg/framework/indy: The main package of the binding. It ties the
// command-correlation bridge and the per-domain façades into one instance.
// Reference: https://pkg.go.dev/github.com/hyperledger/indy-sdk-go/pkg/framework/indy
//
// pkg/did, pkg/wallet, pkg/pool, pkg/ledger, pkg/anoncreds, pkg/payments:
// Per-domain operation façades. Each method issues one native operation and
// returns a future that resolves exactly once.
//
// Basic workflow
//
//      1) Instantiate an Indy instance from a native.Caller.
//      2) Use the façade accessors (DID(), Wallet(), ...) to issue operations.
//      3) Wait on the returned futures with a context.
//      4) Call Close() to fail anything still pending and release resources.
package indysdk
