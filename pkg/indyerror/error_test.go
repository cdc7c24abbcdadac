/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package indyerror

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("wallet item not found", func(t *testing.T) {
		err := Translate(WalletItemNotFound)
		require.Equal(t, KindWalletNotFound, err.Kind())
		require.Equal(t, WalletItemNotFound, err.Code())
		require.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("wallet already exists", func(t *testing.T) {
		err := Translate(WalletAlreadyExists)
		require.Equal(t, KindWalletAlreadyExists, err.Kind())
		require.True(t, errors.Is(err, ErrAlreadyExists))
	})

	t.Run("pool timeout", func(t *testing.T) {
		err := Translate(PoolLedgerTimeout)
		require.Equal(t, KindPoolTimeout, err.Kind())
		require.True(t, errors.Is(err, ErrPoolTimeout))
	})

	t.Run("invalid transaction", func(t *testing.T) {
		require.Equal(t, KindLedgerInvalidTransaction, Translate(LedgerInvalidTransaction).Kind())
	})

	t.Run("invalid params map to invalid argument", func(t *testing.T) {
		for code := CommonInvalidParam1; code <= CommonInvalidStructure; code++ {
			require.Equal(t, KindInvalidArgument, Translate(code).Kind(), "code %d", code)
		}
	})

	t.Run("crypto and did", func(t *testing.T) {
		require.Equal(t, KindCrypto, Translate(UnknownCryptoType).Kind())
		require.Equal(t, KindDID, Translate(DIDAlreadyExists).Kind())
	})

	t.Run("unknown codes keep the raw value", func(t *testing.T) {
		err := Translate(Code(9999))
		require.Equal(t, KindUnknown, err.Kind())
		require.Equal(t, Code(9999), err.Code())
		require.Contains(t, err.Error(), "9999")
	})

	t.Run("success is rejected", func(t *testing.T) {
		require.Equal(t, KindInternal, Translate(Success).Kind())
	})
}

func TestTranslateIsTotal(t *testing.T) {
	// every declared code plus a sweep of arbitrary integers must translate
	// without panicking.
	for code := Code(-1000); code <= 2000; code++ {
		if code == Success {
			continue
		}

		err := Translate(code)
		require.NotNil(t, err)
		require.NotEmpty(t, err.Error())
	}
}

func TestKindOf(t *testing.T) {
	err := Translate(WalletQueryError)
	require.Equal(t, KindWalletQuery, KindOf(err))

	wrapped := errors.Wrap(err, "open failed")
	require.Equal(t, KindWalletQuery, KindOf(wrapped))

	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	require.Equal(t, KindUnknown, KindOf(nil))
}

func TestShutdownAndInternal(t *testing.T) {
	err := Shutdown("binding closed")
	require.Equal(t, KindShutdown, err.Kind())
	require.Equal(t, CodeNone, err.Code())
	require.True(t, errors.Is(err, ErrShutdown))

	ierr := Internal("two values expected")
	require.Equal(t, KindInternal, ierr.Kind())
	require.NotContains(t, ierr.Error(), "indy error")
}
