/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ledger wraps the libindy ledger operations: building request
// json documents and submitting them to an opened pool. Build operations
// are asynchronous like everything else - the request json is produced by
// the native side and delivered through the callback.
package ledger

import (
	"github.com/tidwall/gjson"

	"github.com/hyperledger/indy-sdk-go/pkg/bridge"
	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

const (
	opSignAndSubmitRequest  = "indy_sign_and_submit_request"
	opSubmitRequest         = "indy_submit_request"
	opSignRequest           = "indy_sign_request"
	opBuildNymRequest       = "indy_build_nym_request"
	opBuildGetNymRequest    = "indy_build_get_nym_request"
	opBuildSchemaRequest    = "indy_build_schema_request"
	opBuildGetSchemaRequest = "indy_build_get_schema_request"
)

// Ledger exposes the ledger operation surface of libindy.
type Ledger struct {
	bridge *bridge.Bridge
}

// New returns a ledger façade issuing operations through the given bridge.
func New(b *bridge.Bridge) *Ledger {
	return &Ledger{bridge: b}
}

func validRequest(requestJSON string) error {
	if requestJSON == "" || !gjson.Valid(requestJSON) {
		return indyerror.InvalidArgument("request must be valid json")
	}

	return nil
}

// SignAndSubmitRequest signs the request with the submitter did's key and
// submits it to the pool. Completes with the ledger reply json.
func (l *Ledger) SignAndSubmitRequest(pool native.PoolHandle, wallet native.WalletHandle,
	submitterDID, requestJSON string) *bridge.StringFuture {
	if submitterDID == "" {
		return bridge.FailedString(indyerror.InvalidArgument("submitter did is required"))
	}

	if err := validRequest(requestJSON); err != nil {
		return bridge.FailedString(err)
	}

	return l.bridge.IssueString(opSignAndSubmitRequest, int32(pool), int32(wallet), submitterDID, requestJSON)
}

// SubmitRequest submits an already-signed (or unsigned read) request to the
// pool. Completes with the ledger reply json.
func (l *Ledger) SubmitRequest(pool native.PoolHandle, requestJSON string) *bridge.StringFuture {
	if err := validRequest(requestJSON); err != nil {
		return bridge.FailedString(err)
	}

	return l.bridge.IssueString(opSubmitRequest, int32(pool), requestJSON)
}

// SignRequest signs the request with the submitter did's key without
// submitting it. Completes with the signed request json.
func (l *Ledger) SignRequest(wallet native.WalletHandle, submitterDID, requestJSON string) *bridge.StringFuture {
	if submitterDID == "" {
		return bridge.FailedString(indyerror.InvalidArgument("submitter did is required"))
	}

	if err := validRequest(requestJSON); err != nil {
		return bridge.FailedString(err)
	}

	return l.bridge.IssueString(opSignRequest, int32(wallet), submitterDID, requestJSON)
}

// BuildNymRequest builds a NYM request to register or update a did on the
// ledger. Verkey, alias and role are optional and may be empty.
func (l *Ledger) BuildNymRequest(submitterDID, targetDID, verkey, alias, role string) *bridge.StringFuture {
	if submitterDID == "" || targetDID == "" {
		return bridge.FailedString(indyerror.InvalidArgument("submitter and target dids are required"))
	}

	return l.bridge.IssueString(opBuildNymRequest, submitterDID, targetDID, verkey, alias, role)
}

// BuildGetNymRequest builds a GET_NYM request resolving a did on the
// ledger. The submitter did may be empty for an anonymous read.
func (l *Ledger) BuildGetNymRequest(submitterDID, targetDID string) *bridge.StringFuture {
	if targetDID == "" {
		return bridge.FailedString(indyerror.InvalidArgument("target did is required"))
	}

	return l.bridge.IssueString(opBuildGetNymRequest, submitterDID, targetDID)
}

// BuildSchemaRequest builds a SCHEMA request publishing a credential schema.
func (l *Ledger) BuildSchemaRequest(submitterDID, dataJSON string) *bridge.StringFuture {
	if submitterDID == "" {
		return bridge.FailedString(indyerror.InvalidArgument("submitter did is required"))
	}

	if dataJSON == "" || !gjson.Valid(dataJSON) {
		return bridge.FailedString(indyerror.InvalidArgument("schema data must be valid json"))
	}

	return l.bridge.IssueString(opBuildSchemaRequest, submitterDID, dataJSON)
}

// BuildGetSchemaRequest builds a GET_SCHEMA request resolving a schema by
// its ledger id.
func (l *Ledger) BuildGetSchemaRequest(submitterDID, schemaID string) *bridge.StringFuture {
	if schemaID == "" {
		return bridge.FailedString(indyerror.InvalidArgument("schema id is required"))
	}

	return l.bridge.IssueString(opBuildGetSchemaRequest, submitterDID, schemaID)
}
