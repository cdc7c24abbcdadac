/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package did wraps the libindy did operations (indy_did.h). Every method
// validates its arguments locally, then issues the operation through the
// bridge and returns the pending future. Validation failures resolve
// immediately without allocating a command handle.
package did

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/hyperledger/indy-sdk-go/pkg/bridge"
	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

const (
	opCreateAndStoreMyDID = "indy_create_and_store_my_did"
	opReplaceKeysStart    = "indy_replace_keys_start"
	opReplaceKeysApply    = "indy_replace_keys_apply"
	opStoreTheirDID       = "indy_store_their_did"
	opKeyForDID           = "indy_key_for_did"
	opKeyForLocalDID      = "indy_key_for_local_did"
	opSetEndpointForDID   = "indy_set_endpoint_for_did"
	opGetEndpointForDID   = "indy_get_endpoint_for_did"
	opSetMetadata         = "indy_set_did_metadata"
	opGetMetadata         = "indy_get_did_metadata"
	opGetMyDIDWithMeta    = "indy_get_my_did_with_meta"
	opListMyDIDsWithMeta  = "indy_list_my_dids_with_meta"
	opAbbreviateVerkey    = "indy_abbreviate_verkey"
)

// DID exposes the did operation surface of libindy.
type DID struct {
	bridge *bridge.Bridge
}

// New returns a did façade issuing operations through the given bridge.
func New(b *bridge.Bridge) *DID {
	return &DID{bridge: b}
}

// Record is one entry of the did list kept in the wallet.
type Record struct {
	DID      string `json:"did"`
	Verkey   string `json:"verkey"`
	Metadata string `json:"metadata,omitempty"`
}

// CreateAndStoreMyDID creates signing and encryption keys for a new did and
// stores them in the wallet. The did json may carry did, seed, crypto_type
// and cid fields; pass "{}" (or "") for all-random. Completes with the did
// and its verkey.
func (d *DID) CreateAndStoreMyDID(wallet native.WalletHandle, didJSON string) *bridge.PairFuture {
	if didJSON == "" {
		didJSON = "{}"
	}

	if !gjson.Valid(didJSON) {
		return bridge.FailedPair(indyerror.InvalidArgument("did json is not valid json"))
	}

	return d.bridge.IssuePair(opCreateAndStoreMyDID, int32(wallet), didJSON)
}

// ReplaceKeysStart generates temporary keys for an existing did. Completes
// with the new verkey; the rotation takes effect after ReplaceKeysApply.
func (d *DID) ReplaceKeysStart(wallet native.WalletHandle, did, identityJSON string) *bridge.StringFuture {
	if did == "" {
		return bridge.FailedString(indyerror.InvalidArgument("did is required"))
	}

	if identityJSON == "" {
		identityJSON = "{}"
	}

	if !gjson.Valid(identityJSON) {
		return bridge.FailedString(indyerror.InvalidArgument("identity json is not valid json"))
	}

	return d.bridge.IssueString(opReplaceKeysStart, int32(wallet), did, identityJSON)
}

// ReplaceKeysApply applies the temporary keys started by ReplaceKeysStart
// as the main keys for the did.
func (d *DID) ReplaceKeysApply(wallet native.WalletHandle, did string) *bridge.EmptyFuture {
	if did == "" {
		return bridge.FailedEmpty(indyerror.InvalidArgument("did is required"))
	}

	return d.bridge.IssueEmpty(opReplaceKeysApply, int32(wallet), did)
}

// StoreTheirDID saves the did of a pairwise peer in the wallet. The
// identity json must carry a "did" field; "verkey" is optional.
func (d *DID) StoreTheirDID(wallet native.WalletHandle, identityJSON string) *bridge.EmptyFuture {
	if !gjson.Valid(identityJSON) {
		return bridge.FailedEmpty(indyerror.InvalidArgument("identity json is not valid json"))
	}

	if !gjson.Get(identityJSON, "did").Exists() {
		return bridge.FailedEmpty(indyerror.InvalidArgument("identity json requires a did field"))
	}

	return d.bridge.IssueEmpty(opStoreTheirDID, int32(wallet), identityJSON)
}

// KeyForDID resolves the verkey for a did, consulting the ledger when the
// cached wallet record is stale.
func (d *DID) KeyForDID(pool native.PoolHandle, wallet native.WalletHandle, did string) *bridge.StringFuture {
	if did == "" {
		return bridge.FailedString(indyerror.InvalidArgument("did is required"))
	}

	return d.bridge.IssueString(opKeyForDID, int32(pool), int32(wallet), did)
}

// KeyForLocalDID resolves the verkey for a did from the local wallet only,
// skipping any freshness check against the ledger.
func (d *DID) KeyForLocalDID(wallet native.WalletHandle, did string) *bridge.StringFuture {
	if did == "" {
		return bridge.FailedString(indyerror.InvalidArgument("did is required"))
	}

	return d.bridge.IssueString(opKeyForLocalDID, int32(wallet), did)
}

// SetEndpointForDID sets or replaces the endpoint address and transport key
// for the did.
func (d *DID) SetEndpointForDID(wallet native.WalletHandle, did, address, transportKey string) *bridge.EmptyFuture {
	if did == "" {
		return bridge.FailedEmpty(indyerror.InvalidArgument("did is required"))
	}

	if address == "" {
		return bridge.FailedEmpty(indyerror.InvalidArgument("address is required"))
	}

	return d.bridge.IssueEmpty(opSetEndpointForDID, int32(wallet), did, address, transportKey)
}

// GetEndpointForDID completes with the endpoint address and transport
// verkey stored for the did.
func (d *DID) GetEndpointForDID(wallet native.WalletHandle, pool native.PoolHandle, did string) *bridge.PairFuture {
	if did == "" {
		return bridge.FailedPair(indyerror.InvalidArgument("did is required"))
	}

	return d.bridge.IssuePair(opGetEndpointForDID, int32(wallet), int32(pool), did)
}

// SetMetadata stores the metadata string with the did, replacing any
// previous value.
func (d *DID) SetMetadata(wallet native.WalletHandle, did, metadata string) *bridge.EmptyFuture {
	if did == "" {
		return bridge.FailedEmpty(indyerror.InvalidArgument("did is required"))
	}

	return d.bridge.IssueEmpty(opSetMetadata, int32(wallet), did, metadata)
}

// GetMetadata completes with the metadata stored for the did; empty when
// none was saved.
func (d *DID) GetMetadata(wallet native.WalletHandle, did string) *bridge.StringFuture {
	if did == "" {
		return bridge.FailedString(indyerror.InvalidArgument("did is required"))
	}

	return d.bridge.IssueString(opGetMetadata, int32(wallet), did)
}

// GetMyDIDWithMeta completes with a json document describing the did, its
// verkey and metadata.
func (d *DID) GetMyDIDWithMeta(wallet native.WalletHandle, did string) *bridge.StringFuture {
	if did == "" {
		return bridge.FailedString(indyerror.InvalidArgument("did is required"))
	}

	return d.bridge.IssueString(opGetMyDIDWithMeta, int32(wallet), did)
}

// ListMyDIDsWithMeta completes with a json list of every did stored in the
// wallet. Use ParseRecords to decode it.
func (d *DID) ListMyDIDsWithMeta(wallet native.WalletHandle) *bridge.StringFuture {
	return d.bridge.IssueString(opListMyDIDsWithMeta, int32(wallet))
}

// AbbreviateVerkey completes with the abbreviated verkey if the did is
// derived from it, otherwise with the full verkey.
func (d *DID) AbbreviateVerkey(did, fullVerkey string) *bridge.StringFuture {
	if did == "" {
		return bridge.FailedString(indyerror.InvalidArgument("did is required"))
	}

	if fullVerkey == "" {
		return bridge.FailedString(indyerror.InvalidArgument("full verkey is required"))
	}

	return d.bridge.IssueString(opAbbreviateVerkey, did, fullVerkey)
}

// ParseRecords decodes the json list returned by ListMyDIDsWithMeta.
func ParseRecords(didsJSON string) ([]Record, error) {
	var records []Record

	if err := json.Unmarshal([]byte(didsJSON), &records); err != nil {
		return nil, errors.Wrap(err, "decode did list")
	}

	return records, nil
}
