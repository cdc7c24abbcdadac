/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package pool wraps the libindy pool ledger operations: configuring,
// opening and closing connections to a verifier pool. Opened pools are
// addressed by the native handle returned from Open.
package pool

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/hyperledger/indy-sdk-go/pkg/bridge"
	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

const (
	opCreateConfig       = "indy_create_pool_ledger_config"
	opOpen               = "indy_open_pool_ledger"
	opRefresh            = "indy_refresh_pool_ledger"
	opList               = "indy_list_pools"
	opClose              = "indy_close_pool_ledger"
	opDelete             = "indy_delete_pool_ledger_config"
	opSetProtocolVersion = "indy_set_protocol_version"
)

// Pool exposes the pool ledger operation surface of libindy.
type Pool struct {
	bridge *bridge.Bridge
}

// New returns a pool façade issuing operations through the given bridge.
func New(b *bridge.Bridge) *Pool {
	return &Pool{bridge: b}
}

// OpenFuture is the pending result of Open, typed to the pool handle.
type OpenFuture struct {
	f *bridge.HandleFuture
}

// Get blocks until the pool is opened or the context is done.
func (o *OpenFuture) Get(ctx context.Context) (native.PoolHandle, error) {
	h, err := o.f.Get(ctx)
	if err != nil {
		return 0, err
	}

	return native.PoolHandle(h), nil
}

// CreateConfig creates a named pool ledger configuration. The config json
// must carry a "genesis_txn" field pointing at the genesis transactions
// file.
func (p *Pool) CreateConfig(name, configJSON string) *bridge.EmptyFuture {
	if name == "" {
		return bridge.FailedEmpty(indyerror.InvalidArgument("pool name is required"))
	}

	if configJSON == "" || !gjson.Valid(configJSON) {
		return bridge.FailedEmpty(indyerror.InvalidArgument("pool config must be valid json"))
	}

	if !gjson.Get(configJSON, "genesis_txn").Exists() {
		return bridge.FailedEmpty(indyerror.InvalidArgument("pool config requires a genesis_txn field"))
	}

	return p.bridge.IssueEmpty(opCreateConfig, name, configJSON)
}

// Open connects to the named pool and completes with its native handle.
// The optional config json tunes timeouts and the number of connections.
func (p *Pool) Open(name, configJSON string) *OpenFuture {
	if name == "" {
		return &OpenFuture{f: bridge.FailedHandle(indyerror.InvalidArgument("pool name is required"))}
	}

	if configJSON == "" {
		configJSON = "{}"
	}

	if !gjson.Valid(configJSON) {
		return &OpenFuture{f: bridge.FailedHandle(indyerror.InvalidArgument("pool config must be valid json"))}
	}

	return &OpenFuture{f: p.bridge.IssueHandle(opOpen, name, configJSON)}
}

// Refresh refreshes the verifier list of an opened pool from the ledger.
func (p *Pool) Refresh(handle native.PoolHandle) *bridge.EmptyFuture {
	return p.bridge.IssueEmpty(opRefresh, int32(handle))
}

// List completes with a json list of the locally configured pools.
func (p *Pool) List() *bridge.StringFuture {
	return p.bridge.IssueString(opList)
}

// Close closes an opened pool connection. The handle is invalid afterwards.
func (p *Pool) Close(handle native.PoolHandle) *bridge.EmptyFuture {
	return p.bridge.IssueEmpty(opClose, int32(handle))
}

// Delete deletes a pool ledger configuration. The pool must be closed.
func (p *Pool) Delete(name string) *bridge.EmptyFuture {
	if name == "" {
		return bridge.FailedEmpty(indyerror.InvalidArgument("pool name is required"))
	}

	return p.bridge.IssueEmpty(opDelete, name)
}

// SetProtocolVersion selects the pool protocol version used by subsequent
// ledger requests.
func (p *Pool) SetProtocolVersion(version int) *bridge.EmptyFuture {
	if version < 1 {
		return bridge.FailedEmpty(indyerror.InvalidArgument("protocol version must be positive"))
	}

	return p.bridge.IssueEmpty(opSetProtocolVersion, int64(version))
}
