/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package wallet wraps the libindy wallet operations. Wallets are created
// and opened from json config and credentials documents; open wallets are
// addressed by the native handle returned from Open.
package wallet

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/hyperledger/indy-sdk-go/pkg/bridge"
	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

const (
	opCreate      = "indy_create_wallet"
	opOpen        = "indy_open_wallet"
	opClose       = "indy_close_wallet"
	opDelete      = "indy_delete_wallet"
	opExport      = "indy_export_wallet"
	opImport      = "indy_import_wallet"
	opGenerateKey = "indy_generate_wallet_key"
)

// Wallet exposes the wallet operation surface of libindy.
type Wallet struct {
	bridge *bridge.Bridge
}

// New returns a wallet façade issuing operations through the given bridge.
func New(b *bridge.Bridge) *Wallet {
	return &Wallet{bridge: b}
}

// OpenFuture is the pending result of Open, typed to the wallet handle.
type OpenFuture struct {
	f *bridge.HandleFuture
}

// Get blocks until the wallet is opened or the context is done.
func (o *OpenFuture) Get(ctx context.Context) (native.WalletHandle, error) {
	h, err := o.f.Get(ctx)
	if err != nil {
		return 0, err
	}

	return native.WalletHandle(h), nil
}

func validateConfigs(configJSON, credentialsJSON string) error {
	if configJSON == "" || !gjson.Valid(configJSON) {
		return indyerror.InvalidArgument("wallet config must be valid json")
	}

	if !gjson.Get(configJSON, "id").Exists() {
		return indyerror.InvalidArgument("wallet config requires an id field")
	}

	if credentialsJSON == "" || !gjson.Valid(credentialsJSON) {
		return indyerror.InvalidArgument("wallet credentials must be valid json")
	}

	return nil
}

// Create creates a new secure wallet from the config and credentials json
// documents. The config requires an "id" field.
func (w *Wallet) Create(configJSON, credentialsJSON string) *bridge.EmptyFuture {
	if err := validateConfigs(configJSON, credentialsJSON); err != nil {
		return bridge.FailedEmpty(err)
	}

	return w.bridge.IssueEmpty(opCreate, configJSON, credentialsJSON)
}

// Open opens an existing wallet and completes with its native handle.
func (w *Wallet) Open(configJSON, credentialsJSON string) *OpenFuture {
	if err := validateConfigs(configJSON, credentialsJSON); err != nil {
		return &OpenFuture{f: bridge.FailedHandle(err)}
	}

	return &OpenFuture{f: w.bridge.IssueHandle(opOpen, configJSON, credentialsJSON)}
}

// Close closes an opened wallet. The handle is invalid afterwards.
func (w *Wallet) Close(handle native.WalletHandle) *bridge.EmptyFuture {
	return w.bridge.IssueEmpty(opClose, int32(handle))
}

// Delete deletes a closed wallet together with its storage.
func (w *Wallet) Delete(configJSON, credentialsJSON string) *bridge.EmptyFuture {
	if err := validateConfigs(configJSON, credentialsJSON); err != nil {
		return bridge.FailedEmpty(err)
	}

	return w.bridge.IssueEmpty(opDelete, configJSON, credentialsJSON)
}

// Export writes an encrypted export of the opened wallet to the path named
// in the export config json ("path" and "key" fields required).
func (w *Wallet) Export(handle native.WalletHandle, exportConfigJSON string) *bridge.EmptyFuture {
	if exportConfigJSON == "" || !gjson.Valid(exportConfigJSON) {
		return bridge.FailedEmpty(indyerror.InvalidArgument("export config must be valid json"))
	}

	if !gjson.Get(exportConfigJSON, "path").Exists() || !gjson.Get(exportConfigJSON, "key").Exists() {
		return bridge.FailedEmpty(indyerror.InvalidArgument("export config requires path and key fields"))
	}

	return w.bridge.IssueEmpty(opExport, int32(handle), exportConfigJSON)
}

// Import creates a new wallet and fills it from a previous Export.
func (w *Wallet) Import(configJSON, credentialsJSON, importConfigJSON string) *bridge.EmptyFuture {
	if err := validateConfigs(configJSON, credentialsJSON); err != nil {
		return bridge.FailedEmpty(err)
	}

	if importConfigJSON == "" || !gjson.Valid(importConfigJSON) {
		return bridge.FailedEmpty(indyerror.InvalidArgument("import config must be valid json"))
	}

	return w.bridge.IssueEmpty(opImport, configJSON, credentialsJSON, importConfigJSON)
}

// GenerateKey completes with a fresh wallet master key, optionally derived
// from a "seed" field in the config json.
func (w *Wallet) GenerateKey(configJSON string) *bridge.StringFuture {
	if configJSON == "" {
		configJSON = "{}"
	}

	if !gjson.Valid(configJSON) {
		return bridge.FailedString(indyerror.InvalidArgument("key config must be valid json"))
	}

	return w.bridge.IssueString(opGenerateKey, configJSON)
}
