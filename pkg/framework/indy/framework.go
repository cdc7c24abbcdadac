/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package indy ties the correlation bridge and the per-domain façades into
// one binding instance. Create an Indy from a native caller, use the façade
// accessors to issue operations, and Close it to fail anything still
// pending.
package indy

import (
	"github.com/hyperledger/indy-sdk-go/pkg/anoncreds"
	"github.com/hyperledger/indy-sdk-go/pkg/bridge"
	"github.com/hyperledger/indy-sdk-go/pkg/did"
	"github.com/hyperledger/indy-sdk-go/pkg/ledger"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
	"github.com/hyperledger/indy-sdk-go/pkg/payments"
	"github.com/hyperledger/indy-sdk-go/pkg/pool"
	"github.com/hyperledger/indy-sdk-go/pkg/wallet"
)

// Indy is a binding instance over one native library. All façades share a
// single bridge, so command handles are unique across domains.
type Indy struct {
	bridge    *bridge.Bridge
	did       *did.DID
	wallet    *wallet.Wallet
	pool      *pool.Pool
	ledger    *ledger.Ledger
	anoncreds *anoncreds.Anoncreds
	payments  *payments.Payments
}

// New returns a binding instance issuing operations through the given
// native caller.
func New(caller native.Caller) *Indy {
	b := bridge.New(caller)

	return &Indy{
		bridge:    b,
		did:       did.New(b),
		wallet:    wallet.New(b),
		pool:      pool.New(b),
		ledger:    ledger.New(b),
		anoncreds: anoncreds.New(b),
		payments:  payments.New(b),
	}
}

// DID returns the did façade.
func (i *Indy) DID() *did.DID {
	return i.did
}

// Wallet returns the wallet façade.
func (i *Indy) Wallet() *wallet.Wallet {
	return i.wallet
}

// Pool returns the pool ledger façade.
func (i *Indy) Pool() *pool.Pool {
	return i.pool
}

// Ledger returns the ledger façade.
func (i *Indy) Ledger() *ledger.Ledger {
	return i.ledger
}

// Anoncreds returns the anoncreds façade.
func (i *Indy) Anoncreds() *anoncreds.Anoncreds {
	return i.anoncreds
}

// Payments returns the payments façade.
func (i *Indy) Payments() *payments.Payments {
	return i.payments
}

// Pending reports the number of operations still waiting for a callback.
func (i *Indy) Pending() int {
	return i.bridge.Pending()
}

// Close fails every still-pending operation with a shutdown error and
// rejects new operations. In-flight native work is not cancelled; its late
// callbacks are dropped.
func (i *Indy) Close() error {
	return i.bridge.Close()
}
