/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package payments

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

const testWallet = native.WalletHandle(5)

func setup(t *testing.T) (*Payments, *mocknative.Caller) {
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

func TestCreatePaymentAddress(t *testing.T) {
	p, caller := setup(t)
	caller.ScriptReply(opCreatePaymentAddress, "pay:sov:2mVXsXyVADzSDw88RAojPpdgxLPQyC1oJUqkrLeU5AdM3HkeCU")

	address, err := p.CreatePaymentAddress(testWallet, "sov", "").Get(ctxWithTimeout(t))
	require.NoError(t, err)
	require.Contains(t, address, "pay:sov:")

	calls := caller.CallsTo(opCreatePaymentAddress)
	require.Len(t, calls, 1)
	require.Equal(t, []interface{}{int32(testWallet), "sov", "{}"}, calls[0].Args)
}

func TestCreatePaymentAddressUnknownMethod(t *testing.T) {
	p, caller := setup(t)
	caller.ScriptError(opCreatePaymentAddress, indyerror.PaymentUnknownMethod)

	_, err := p.CreatePaymentAddress(testWallet, "xyz", "{}").Get(ctxWithTimeout(t))
	require.Equal(t, indyerror.KindPayment, indyerror.KindOf(err))
}

func TestListPaymentAddresses(t *testing.T) {
	p, caller := setup(t)
	caller.ScriptReply(opListPaymentAddresses, `["pay:sov:abc"]`)

	addresses, err := p.ListPaymentAddresses(testWallet).Get(ctxWithTimeout(t))
	require.NoError(t, err)
	require.Contains(t, addresses, "pay:sov:abc")
}

func TestAddRequestFees(t *testing.T) {
	p, caller := setup(t)
	caller.ScriptReply(opAddRequestFees, `{"operation":{},"fees":{}}`, "sov")

	request, method, err := p.AddRequestFees(testWallet, "Th7MpTaRZVRYnPiabds81Y",
		`{"operation":{}}`, `["pay:sov:abc"]`, `[]`, "").Get(ctxWithTimeout(t))
	require.NoError(t, err)
	require.Contains(t, request, "fees")
	require.Equal(t, "sov", method)
}

func TestAddRequestFeesInsufficientFunds(t *testing.T) {
	p, caller := setup(t)
	caller.ScriptError(opAddRequestFees, indyerror.PaymentInsufficientFunds)

	_, _, err := p.AddRequestFees(testWallet, "", `{"operation":{}}`, `["pay:sov:abc"]`, `[]`, "").
		Get(ctxWithTimeout(t))
	require.Equal(t, indyerror.KindPayment, indyerror.KindOf(err))

	var structured *indyerror.Error

	require.True(t, errors.As(err, &structured))
	require.Equal(t, indyerror.PaymentInsufficientFunds, structured.Code())
}

func TestAddRequestFeesValidation(t *testing.T) {
	p, caller := setup(t)

	_, _, err := p.AddRequestFees(testWallet, "", "not json", `[]`, `[]`, "").Get(ctxWithTimeout(t))
	require.Equal(t, indyerror.KindInvalidArgument, indyerror.KindOf(err))
	require.Empty(t, caller.Calls())
}
