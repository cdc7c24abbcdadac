/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package payments wraps the libindy payment operations. Payment methods
// are pluggable on the native side; this façade addresses them by their
// method name prefix (e.g. "sov").
package payments

import (
	"github.com/tidwall/gjson"

	"github.com/hyperledger/indy-sdk-go/pkg/bridge"
	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
	"github.com/hyperledger/indy-sdk-go/pkg/native"
)

const (
	opCreatePaymentAddress = "indy_create_payment_address"
	opListPaymentAddresses = "indy_list_payment_addresses"
	opAddRequestFees       = "indy_add_request_fees"
)

// Payments exposes the payment operation surface of libindy.
type Payments struct {
	bridge *bridge.Bridge
}

// New returns a payments façade issuing operations through the given
// bridge.
func New(b *bridge.Bridge) *Payments {
	return &Payments{bridge: b}
}

// CreatePaymentAddress creates an address for the payment method and stores
// its keys in the wallet. Completes with the new address.
func (p *Payments) CreatePaymentAddress(wallet native.WalletHandle, paymentMethod,
	configJSON string) *bridge.StringFuture {
	if paymentMethod == "" {
		return bridge.FailedString(indyerror.InvalidArgument("payment method is required"))
	}

	if configJSON == "" {
		configJSON = "{}"
	}

	if !gjson.Valid(configJSON) {
		return bridge.FailedString(indyerror.InvalidArgument("payment config must be valid json"))
	}

	return p.bridge.IssueString(opCreatePaymentAddress, int32(wallet), paymentMethod, configJSON)
}

// ListPaymentAddresses completes with a json list of the payment addresses
// stored in the wallet.
func (p *Payments) ListPaymentAddresses(wallet native.WalletHandle) *bridge.StringFuture {
	return p.bridge.IssueString(opListPaymentAddresses, int32(wallet))
}

// AddRequestFees modifies the request json to pay fees from the given
// inputs. Completes with the modified request json and the payment method
// that will process it.
func (p *Payments) AddRequestFees(wallet native.WalletHandle, submitterDID, requestJSON,
	inputsJSON, outputsJSON, extra string) *bridge.PairFuture {
	if requestJSON == "" || !gjson.Valid(requestJSON) {
		return bridge.FailedPair(indyerror.InvalidArgument("request must be valid json"))
	}

	if inputsJSON == "" || !gjson.Valid(inputsJSON) {
		return bridge.FailedPair(indyerror.InvalidArgument("payment inputs must be valid json"))
	}

	if outputsJSON == "" || !gjson.Valid(outputsJSON) {
		return bridge.FailedPair(indyerror.InvalidArgument("payment outputs must be valid json"))
	}

	return p.bridge.IssuePair(opAddRequestFees,
		int32(wallet), submitterDID, requestJSON, inputsJSON, outputsJSON, extra)
}
