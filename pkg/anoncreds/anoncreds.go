/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package anoncreds wraps the libindy anonymous-credentials operations used
// by issuers and provers. All cryptography happens on the native side; this
// façade only moves json documents across the boundary.
package anoncreds

import (
	"github.com/tidwall/gjson"

	"github.com/hyperledger/indy-sdk-go/pkg/bridge"
	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

const (
	opIssuerCreateSchema   = "indy_issuer_create_schema"
	opIssuerCreateCredDef  = "indy_issuer_create_and_store_credential_def"
	opProverCreateSecret   = "indy_prover_create_master_secret"
	opProverGetCredentials = "indy_prover_get_credentials"
)

// Anoncreds exposes the anoncreds operation surface of libindy.
type Anoncreds struct {
	bridge *bridge.Bridge
}

// New returns an anoncreds façade issuing operations through the given
// bridge.
func New(b *bridge.Bridge) *Anoncreds {
	return &Anoncreds{bridge: b}
}

// IssuerCreateSchema creates a credential schema. Completes with the schema
// id and the schema json to be published via a SCHEMA ledger request.
func (a *Anoncreds) IssuerCreateSchema(issuerDID, name, version, attrsJSON string) *bridge.PairFuture {
	if issuerDID == "" {
		return bridge.FailedPair(indyerror.InvalidArgument("issuer did is required"))
	}

	if name == "" || version == "" {
		return bridge.FailedPair(indyerror.InvalidArgument("schema name and version are required"))
	}

	if attrsJSON == "" || !gjson.Valid(attrsJSON) {
		return bridge.FailedPair(indyerror.InvalidArgument("attribute names must be valid json"))
	}

	return a.bridge.IssuePair(opIssuerCreateSchema, issuerDID, name, version, attrsJSON)
}

// IssuerCreateAndStoreCredentialDef creates a credential definition for the
// schema and stores the private part in the wallet. Completes with the
// definition id and the public definition json.
func (a *Anoncreds) IssuerCreateAndStoreCredentialDef(wallet native.WalletHandle, issuerDID, schemaJSON,
	tag, signatureType, configJSON string) *bridge.PairFuture {
	if issuerDID == "" {
		return bridge.FailedPair(indyerror.InvalidArgument("issuer did is required"))
	}

	if schemaJSON == "" || !gjson.Valid(schemaJSON) {
		return bridge.FailedPair(indyerror.InvalidArgument("schema must be valid json"))
	}

	if tag == "" {
		return bridge.FailedPair(indyerror.InvalidArgument("credential definition tag is required"))
	}

	if configJSON == "" {
		configJSON = "{}"
	}

	if !gjson.Valid(configJSON) {
		return bridge.FailedPair(indyerror.InvalidArgument("credential definition config must be valid json"))
	}

	return a.bridge.IssuePair(opIssuerCreateCredDef,
		int32(wallet), issuerDID, schemaJSON, tag, signatureType, configJSON)
}

// ProverCreateMasterSecret creates a master secret in the wallet and
// completes with its id. Pass an empty id to let the native side generate
// a random one.
func (a *Anoncreds) ProverCreateMasterSecret(wallet native.WalletHandle, masterSecretID string) *bridge.StringFuture {
	return a.bridge.IssueString(opProverCreateSecret, int32(wallet), masterSecretID)
}

// ProverGetCredentials completes with a json list of the wallet credentials
// matching the filter. An empty filter matches everything.
func (a *Anoncreds) ProverGetCredentials(wallet native.WalletHandle, filterJSON string) *bridge.StringFuture {
	if filterJSON == "" {
		filterJSON = "{}"
	}

	if !gjson.Valid(filterJSON) {
		return bridge.FailedString(indyerror.InvalidArgument("credential filter must be valid json"))
	}

	return a.bridge.IssueString(opProverGetCredentials, int32(wallet), filterJSON)
}
