// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zemyblue/finschia-lottery/types"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.5", FormatAmount(types.NewAmount(1500000), 6))
	assert.Equal(t, "1000", FormatAmount(types.NewAmount(1000), 0))
	assert.Equal(t, "0", FormatAmount(types.Amount{}, 6))
}

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("1.5", 6)
	require.NoError(t, err)
	assert.Equal(t, types.NewAmount(1500000), a)

	a, err = ParseAmount("200", 0)
	require.NoError(t, err)
	assert.Equal(t, types.NewAmount(200), a)

	_, err = ParseAmount("0.0000001", 6)
	assert.Error(t, err)
	_, err = ParseAmount("-1", 6)
	assert.Error(t, err)
	_, err = ParseAmount("abc", 6)
	assert.Error(t, err)
}

func TestDecodeReceipt(t *testing.T) {
	receipt := &types.Receipt{
		Ty:        types.ExecOk,
		Logs:      []*types.ReceiptLog{{Ty: types.TyLogTransfer}},
		Transfers: []*types.Transfer{{Denom: "cony", From: "a", To: "b", Amount: types.NewAmount(7)}},
	}
	result := DecodeReceipt("coins", receipt)
	require.Len(t, result.Logs, 1)
	assert.Equal(t, "LogTransfer", result.Logs[0].TyName)
	assert.Equal(t, "7", result.Transfers[0].Amount)
	assert.Nil(t, DecodeReceipt("coins", nil))
}
