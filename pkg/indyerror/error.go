/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package indyerror normalizes libindy status codes into a structured error
// taxonomy. Callers match on Kind (or the exported sentinels via errors.Is)
// instead of raw numeric codes; the raw code is preserved for diagnostics.
package indyerror

import (
	"errors"
	"fmt"
)

// Kind is the category of a structured error.
type Kind int

// Error categories. Binding-side failures (shutdown, internal protocol or
// decode violations) have no native code and use CodeNone.
const (
	KindUnknown Kind = iota
	KindInvalidArgument
	KindIO
	KindWallet
	KindWalletNotFound
	KindWalletAlreadyExists
	KindWalletAccessDenied
	KindWalletQuery
	KindCrypto
	KindPool
	KindPoolTimeout
	KindLedger
	KindLedgerInvalidTransaction
	KindAnoncreds
	KindDID
	KindPayment
	KindShutdown
	KindInternal
)

// CodeNone marks errors raised by the binding itself rather than by libindy.
const CodeNone Code = -1

//nolint:gocyclo
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindIO:
		return "io error"
	case KindWallet:
		return "wallet error"
	case KindWalletNotFound:
		return "wallet item not found"
	case KindWalletAlreadyExists:
		return "wallet item already exists"
	case KindWalletAccessDenied:
		return "wallet access denied"
	case KindWalletQuery:
		return "wallet query error"
	case KindCrypto:
		return "crypto error"
	case KindPool:
		return "pool error"
	case KindPoolTimeout:
		return "pool timeout"
	case KindLedger:
		return "ledger error"
	case KindLedgerInvalidTransaction:
		return "invalid ledger transaction"
	case KindAnoncreds:
		return "anoncreds error"
	case KindDID:
		return "did error"
	case KindPayment:
		return "payment error"
	case KindShutdown:
		return "shutdown"
	case KindInternal:
		return "internal error"
	default:
		return "unknown error"
	}
}

// Error is the normalized failure representation surfaced to callers in
// place of raw native status codes. Immutable once constructed.
type Error struct {
	kind Kind
	code Code
	msg  string
}

// New builds an Error of the given kind. The code may be CodeNone for
// binding-side failures.
func New(kind Kind, code Code, msg string) *Error {
	return &Error{kind: kind, code: code, msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.code == CodeNone {
		return fmt.Sprintf("%s: %s", e.kind, e.msg)
	}

	return fmt.Sprintf("%s: %s (indy error %d)", e.kind, e.msg, e.code)
}

// Kind returns the error category.
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the raw native status code, or CodeNone for binding-side
// failures.
func (e *Error) Code() Code {
	return e.code
}

// Is reports kind equality, so errors.Is(err, ErrNotFound) matches any
// wallet-not-found error regardless of message or exact code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.kind == t.kind
}

// Sentinels for errors.Is matching against common categories.
//
//nolint:gochecknoglobals
var (
	ErrNotFound      = New(KindWalletNotFound, CodeNone, "not found")
	ErrAlreadyExists = New(KindWalletAlreadyExists, CodeNone, "already exists")
	ErrPoolTimeout   = New(KindPoolTimeout, CodeNone, "pool timeout")
	ErrShutdown      = New(KindShutdown, CodeNone, "shutdown")
)

// KindOf returns the category of err, or KindUnknown if err does not wrap an
// *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return KindUnknown
}

// Shutdown builds the error delivered to operations still pending when the
// binding closes.
func Shutdown(msg string) *Error {
	return New(KindShutdown, CodeNone, msg)
}

// Internal builds a binding-side protocol or decode violation error.
func Internal(msg string) *Error {
	return New(KindInternal, CodeNone, msg)
}

// InvalidArgument builds a local validation error. These short-circuit in
// the façade before a command handle is ever allocated.
func InvalidArgument(msg string) *Error {
	return New(KindInvalidArgument, CodeNone, msg)
}

//nolint:gochecknoglobals
var messages = map[Code]string{
	CommonInvalidState:     "library is in an invalid state",
	CommonInvalidStructure: "invalid structure of an input parameter",
	CommonIOError:          "io error",

	WalletInvalidHandle:         "wallet handle does not point to an opened wallet",
	WalletUnknownType:           "unknown wallet storage type",
	WalletTypeAlreadyRegistered: "wallet storage type already registered",
	WalletAlreadyExists:         "wallet with this name already exists",
	WalletNotFound:              "wallet not found",
	WalletIncompatiblePool:      "wallet was opened against a different pool",
	WalletAlreadyOpened:         "wallet is already opened",
	WalletAccessFailed:          "wallet security error (access denied)",
	WalletInputError:            "invalid wallet input",
	WalletDecodingError:         "wallet data decoding failed",
	WalletStorageError:          "wallet storage failure",
	WalletEncryptionError:       "wallet encryption failure",
	WalletItemNotFound:          "wallet item not found",
	WalletItemAlreadyExists:     "wallet item already exists",
	WalletQueryError:            "invalid wallet query",

	PoolLedgerNotCreated:            "pool ledger config is not created",
	PoolLedgerInvalidPoolHandle:     "pool handle does not point to an opened pool",
	PoolLedgerTerminated:            "pool ledger terminated",
	LedgerNoConsensus:               "no consensus during ledger operation",
	LedgerInvalidTransaction:        "transaction rejected by the ledger",
	LedgerSecurityError:             "ledger denied the request",
	PoolLedgerConfigAlreadyExists:   "pool ledger config already exists",
	PoolLedgerTimeout:               "timeout on pool ledger operation",
	PoolIncompatibleProtocolVersion: "pool protocol version is incompatible",
	LedgerNotFound:                  "item not found on the ledger",

	AnoncredsRevocationRegistryFull:    "revocation registry is full",
	AnoncredsInvalidUserRevocID:        "invalid user revocation id",
	AnoncredsMasterSecretDuplicateName: "master secret name already exists",
	AnoncredsProofRejected:             "proof rejected",
	AnoncredsCredentialRevoked:         "credential has been revoked",
	AnoncredsCredDefAlreadyExists:      "credential definition already exists",

	UnknownCryptoType: "unknown crypto type",

	DIDAlreadyExists: "did already exists in the wallet",

	PaymentUnknownMethod:         "unknown payment method",
	PaymentIncompatibleMethods:   "payment methods are incompatible",
	PaymentInsufficientFunds:     "insufficient funds on payment inputs",
	PaymentSourceDoesNotExist:    "payment source does not exist",
	PaymentOperationNotSupported: "payment operation not supported",
	PaymentExtraFunds:            "extra funds on payment inputs",
	TransactionNotAllowed:        "transaction not allowed for this did",
}

// Translate maps a native status code to a structured error. Translation is
// total: codes outside the published set map to KindUnknown with the raw
// code preserved. Translating Success is a programming error and yields an
// internal error rather than nil.
//
//nolint:gocyclo
func Translate(code Code) *Error {
	if code == Success {
		return Internal("success code translated as failure")
	}

	msg, ok := messages[code]
	if !ok {
		msg = "unmapped libindy error"
	}

	var kind Kind

	switch {
	case code >= CommonInvalidParam1 && code <= CommonInvalidStructure:
		kind = KindInvalidArgument
	case code == CommonIOError:
		kind = KindIO
	case code == WalletNotFound || code == WalletItemNotFound:
		kind = KindWalletNotFound
	case code == WalletAlreadyExists || code == WalletItemAlreadyExists:
		kind = KindWalletAlreadyExists
	case code == WalletAccessFailed:
		kind = KindWalletAccessDenied
	case code == WalletQueryError:
		kind = KindWalletQuery
	case code == WalletInputError:
		kind = KindInvalidArgument
	case code >= WalletInvalidHandle && code <= WalletQueryError:
		kind = KindWallet
	case code == PoolLedgerTimeout:
		kind = KindPoolTimeout
	case code == LedgerInvalidTransaction:
		kind = KindLedgerInvalidTransaction
	case code == LedgerNoConsensus || code == LedgerSecurityError || code == LedgerNotFound:
		kind = KindLedger
	case code >= PoolLedgerNotCreated && code <= LedgerNotFound:
		kind = KindPool
	case code >= AnoncredsRevocationRegistryFull && code <= AnoncredsCredDefAlreadyExists:
		kind = KindAnoncreds
	case code == UnknownCryptoType:
		kind = KindCrypto
	case code == DIDAlreadyExists:
		kind = KindDID
	case code >= PaymentUnknownMethod && code <= TransactionNotAllowed:
		kind = KindPayment
	default:
		kind = KindUnknown
	}

	return New(kind, code, msg)
}
