/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package indyerror

// Code is a libindy status code (indy_error_t). The numeric values are owned
// by the native library's published contract and are carried here as
// versioned external data.
type Code int32

// Common codes.
const (
	Success Code = 0

	CommonInvalidParam1    Code = 100
	CommonInvalidParam2    Code = 101
	CommonInvalidParam3    Code = 102
	CommonInvalidParam4    Code = 103
	CommonInvalidParam5    Code = 104
	CommonInvalidParam6    Code = 105
	CommonInvalidParam7    Code = 106
	CommonInvalidParam8    Code = 107
	CommonInvalidParam9    Code = 108
	CommonInvalidParam10   Code = 109
	CommonInvalidParam11   Code = 110
	CommonInvalidParam12   Code = 111
	CommonInvalidState     Code = 112
	CommonInvalidStructure Code = 113
	CommonIOError          Code = 114
)

// Wallet codes.
const (
	WalletInvalidHandle         Code = 200
	WalletUnknownType           Code = 201
	WalletTypeAlreadyRegistered Code = 202
	WalletAlreadyExists         Code = 203
	WalletNotFound              Code = 204
	WalletIncompatiblePool      Code = 205
	WalletAlreadyOpened         Code = 206
	WalletAccessFailed          Code = 207
	WalletInputError            Code = 208
	WalletDecodingError         Code = 209
	WalletStorageError          Code = 210
	WalletEncryptionError       Code = 211
	WalletItemNotFound          Code = 212
	WalletItemAlreadyExists     Code = 213
	WalletQueryError            Code = 214
)

// Pool and ledger codes.
const (
	PoolLedgerNotCreated            Code = 300
	PoolLedgerInvalidPoolHandle     Code = 301
	PoolLedgerTerminated            Code = 302
	LedgerNoConsensus               Code = 303
	LedgerInvalidTransaction        Code = 304
	LedgerSecurityError             Code = 305
	PoolLedgerConfigAlreadyExists   Code = 306
	PoolLedgerTimeout               Code = 307
	PoolIncompatibleProtocolVersion Code = 308
	LedgerNotFound                  Code = 309
)

// Anoncreds codes.
const (
	AnoncredsRevocationRegistryFull    Code = 400
	AnoncredsInvalidUserRevocID        Code = 401
	AnoncredsMasterSecretDuplicateName Code = 404
	AnoncredsProofRejected             Code = 405
	AnoncredsCredentialRevoked         Code = 406
	AnoncredsCredDefAlreadyExists      Code = 407
)

// Crypto, DID and payment codes.
const (
	UnknownCryptoType Code = 500

	DIDAlreadyExists Code = 600

	PaymentUnknownMethod         Code = 700
	PaymentIncompatibleMethods   Code = 701
	PaymentInsufficientFunds     Code = 702
	PaymentSourceDoesNotExist    Code = 703
	PaymentOperationNotSupported Code = 704
	PaymentExtraFunds            Code = 705
	TransactionNotAllowed        Code = 706
)
