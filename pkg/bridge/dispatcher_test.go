/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/indy-sdk-go/pkg/indyerror"
)

func TestDecode(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		vals, err := decode(shapeEmpty, nil)
		require.NoError(t, err)
		require.Nil(t, vals)
	})

	t.Run("empty rejects extra fields", func(t *testing.T) {
		_, err := decode(shapeEmpty, []interface{}{"stray"})
		require.Error(t, err)
		require.Equal(t, indyerror.KindInternal, indyerror.KindOf(err))
	})

	t.Run("string", func(t *testing.T) {
		vals, err := decode(shapeString, []interface{}{"verkey"})
		require.NoError(t, err)
		require.Equal(t, []interface{}{"verkey"}, vals)
	})

	t.Run("nil string decodes as empty", func(t *testing.T) {
		vals, err := decode(shapeString, []interface{}{nil})
		require.NoError(t, err)
		require.Equal(t, []interface{}{""}, vals)
	})

	t.Run("string pair", func(t *testing.T) {
		vals, err := decode(shapeStringPair, []interface{}{"did", "verkey"})
		require.NoError(t, err)
		require.Equal(t, []interface{}{"did", "verkey"}, vals)
	})

	t.Run("pair rejects zero and one field", func(t *testing.T) {
		for _, values := range [][]interface{}{nil, {"only"}} {
			_, err := decode(shapeStringPair, values)
			require.Error(t, err)
			require.Equal(t, indyerror.KindInternal, indyerror.KindOf(err))
		}
	})

	t.Run("wrong field type", func(t *testing.T) {
		_, err := decode(shapeString, []interface{}{12345})
		require.Error(t, err)
		require.Contains(t, err.Error(), "string expected")
	})

	t.Run("handle", func(t *testing.T) {
		vals, err := decode(shapeHandle, []interface{}{int32(9)})
		require.NoError(t, err)
		require.Equal(t, []interface{}{int32(9)}, vals)
	})

	t.Run("handle from int and int64", func(t *testing.T) {
		vals, err := decode(shapeHandle, []interface{}{11})
		require.NoError(t, err)
		require.Equal(t, []interface{}{int32(11)}, vals)

		vals, err = decode(shapeHandle, []interface{}{int64(12)})
		require.NoError(t, err)
		require.Equal(t, []interface{}{int32(12)}, vals)
	})

	t.Run("handle rejects strings", func(t *testing.T) {
		_, err := decode(shapeHandle, []interface{}{"7"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "handle expected")
	})
}
