/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anoncreds

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/indy-sdk-go/pkg/bridge"
	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
	mocknative "github.com/hyperledger/indy-sdk-go/pkg/internal/mock/native"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

const (
	testWallet = native.WalletHandle(5)
	testIssuer = "NcYxiDXkpYi6ov5FcYDi1e"
)

func setup(t *testing.T) (*Anoncreds, *mocknative.Caller) {
	t.Helper()

	caller := mocknative.NewCaller()
	b := bridge.New(caller)

	t.Cleanup(func() {
		require.NoError(t, b.Close())
	})

	return New(b), caller
}

func ctxWithTimeout(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	return ctx
}

func TestIssuerCreateSchema(t *testing.T) {
	a, caller := setup(t)

	schemaID := testIssuer + ":2:gvt:1.0"
	caller.ScriptReply(opIssuerCreateSchema, schemaID, `{"id":"`+schemaID+`","name":"gvt"}`)

	id, schemaJSON, err := a.IssuerCreateSchema(testIssuer, "gvt", "1.0", `["name","age"]`).
		Get(ctxWithTimeout(t))
	require.NoError(t, err)
	require.Equal(t, schemaID, id)
	require.Contains(t, schemaJSON, "gvt")

	calls := caller.CallsTo(opIssuerCreateSchema)
	require.Len(t, calls, 1)
	require.Equal(t, []interface{}{testIssuer, "gvt", "1.0", `["name","age"]`}, calls[0].Args)
}

func TestIssuerCreateSchemaValidation(t *testing.T) {
	a, caller := setup(t)

	ctx := ctxWithTimeout(t)

	_, _, err := a.IssuerCreateSchema("", "gvt", "1.0", `["name"]`).Get(ctx)
	require.Equal(t, indyerror.KindInvalidArgument, indyerror.KindOf(err))

	_, _, err = a.IssuerCreateSchema(testIssuer, "gvt", "1.0", "not json").Get(ctx)
	require.Equal(t, indyerror.KindInvalidArgument, indyerror.KindOf(err))

	require.Empty(t, caller.Calls())
}

func TestIssuerCreateAndStoreCredentialDef(t *testing.T) {
	a, caller := setup(t)

	credDefID := testIssuer + ":3:CL:1:TAG"
	caller.ScriptReply(opIssuerCreateCredDef, credDefID, `{"id":"`+credDefID+`"}`)

	id, credDefJSON, err := a.IssuerCreateAndStoreCredentialDef(testWallet, testIssuer,
		`{"id":"1","name":"gvt"}`, "TAG", "CL", "").Get(ctxWithTimeout(t))
	require.NoError(t, err)
	require.Equal(t, credDefID, id)
	require.NotEmpty(t, credDefJSON)

	calls := caller.CallsTo(opIssuerCreateCredDef)
	require.Len(t, calls, 1)
	require.Equal(t, "{}", calls[0].Args[5], "empty config defaults to {}")
}

func TestIssuerCreateCredDefAlreadyExists(t *testing.T) {
	a, caller := setup(t)
	caller.ScriptError(opIssuerCreateCredDef, indyerror.AnoncredsCredDefAlreadyExists)

	_, _, err := a.IssuerCreateAndStoreCredentialDef(testWallet, testIssuer,
		`{"id":"1"}`, "TAG", "CL", "{}").Get(ctxWithTimeout(t))
	require.Equal(t, indyerror.KindAnoncreds, indyerror.KindOf(err))
}

func TestProverCreateMasterSecret(t *testing.T) {
	a, caller := setup(t)
	caller.ScriptReply(opProverCreateSecret, "master-secret-id")

	id, err := a.ProverCreateMasterSecret(testWallet, "").Get(ctxWithTimeout(t))
	require.NoError(t, err)
	require.Equal(t, "master-secret-id", id)
}

func TestProverCreateMasterSecretDuplicate(t *testing.T) {
	a, caller := setup(t)
	caller.ScriptError(opProverCreateSecret, indyerror.AnoncredsMasterSecretDuplicateName)

	_, err := a.ProverCreateMasterSecret(testWallet, "existing").Get(ctxWithTimeout(t))
	require.Equal(t, indyerror.KindAnoncreds, indyerror.KindOf(err))

	var structured *indyerror.Error

	require.True(t, errors.As(err, &structured))
	require.Equal(t, indyerror.AnoncredsMasterSecretDuplicateName, structured.Code())
}

func TestProverGetCredentials(t *testing.T) {
	a, caller := setup(t)
	caller.ScriptReply(opProverGetCredentials, `[{"referent":"cred-1","attrs":{"name":"Alex"}}]`)

	ctx := ctxWithTimeout(t)

	credentials, err := a.ProverGetCredentials(testWallet, "").Get(ctx)
	require.NoError(t, err)
	require.Contains(t, credentials, "cred-1")

	calls := caller.CallsTo(opProverGetCredentials)
	require.Len(t, calls, 1)
	require.Equal(t, []interface{}{int32(testWallet), "{}"}, calls[0].Args)

	_, err = a.ProverGetCredentials(testWallet, "{bad").Get(ctx)
	require.Equal(t, indyerror.KindInvalidArgument, indyerror.KindOf(err))
}
