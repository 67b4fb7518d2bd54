// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zemyblue/finschia-lottery/types"
)

func TestOneCoin(t *testing.T) {
	_, err := OneCoin(nil, "cony")
	assert.Equal(t, ErrNoFunds, err)

	_, err = OneCoin([]*types.Coin{types.NewCoin(0, "cony")}, "cony")
	assert.Equal(t, ErrNoFunds, err)

	_, err = OneCoin([]*types.Coin{types.NewCoin(1, "cony"), types.NewCoin(1, "earth")}, "cony")
	assert.Equal(t, ErrMultipleDenoms, errors.Cause(err))

	_, err = OneCoin([]*types.Coin{types.NewCoin(1, "earth")}, "cony")
	assert.Equal(t, ErrMissingDenom, errors.Cause(err))

	amount, err := OneCoin([]*types.Coin{types.NewCoin(1000, "cony")}, "cony")
	require.NoError(t, err)
	assert.Equal(t, types.NewAmount(1000), amount)
}

func TestActionGetValue(t *testing.T) {
	var action LotteryAction
	require.NoError(t, json.Unmarshal([]byte(`{"deposit":{}}`), &action))
	name, value, err := action.GetValue()
	require.NoError(t, err)
	assert.Equal(t, "Deposit", name)
	assert.IsType(t, &Deposit{}, value)

	action = LotteryAction{}
	require.NoError(t, json.Unmarshal([]byte(`{"transfer_token":{"to":"bob","amount":"15"}}`), &action))
	name, value, err = action.GetValue()
	require.NoError(t, err)
	assert.Equal(t, "TransferToken", name)
	assert.Equal(t, "bob", value.(*TransferToken).To)
	assert.Equal(t, types.NewAmount(15), value.(*TransferToken).Amount)

	_, _, err = (&LotteryAction{}).GetValue()
	assert.Equal(t, types.ErrActionNotSupport, errors.Cause(err))
	_, _, err = (&LotteryAction{Deposit: &Deposit{}, CloseRound: &CloseRound{}}).GetValue()
	assert.Equal(t, types.ErrActionNotSupport, errors.Cause(err))
}

func TestRoundCodec(t *testing.T) {
	r := &Round{
		Round:          3,
		TotalAmount:    types.NewAmount(4000),
		FirstWinner:    &Payout{Addr: "alice", Amount: types.NewAmount(2400)},
		SecondWinner:   &Payout{Addr: "bob", Amount: types.NewAmount(800)},
		OwnerPayout:    &Payout{Addr: "owner", Amount: types.NewAmount(80)},
		Remainder:      types.NewAmount(720),
		SelectionProof: "abcd",
	}
	var got Round
	require.NoError(t, types.Decode(types.Encode(r), &got))
	assert.Equal(t, r, &got)

	open := &Round{Round: 4, IsOpen: true}
	got = Round{}
	require.NoError(t, types.Decode(types.Encode(open), &got))
	assert.Equal(t, open, &got)
	assert.Nil(t, got.FirstWinner)
}

func TestRoundClosedAttrs(t *testing.T) {
	r := &Round{
		Round:        1,
		FirstWinner:  &Payout{Addr: "alice", Amount: types.NewAmount(2400)},
		SecondWinner: &Payout{Addr: "alice", Amount: types.NewAmount(800)},
		Remainder:    types.NewAmount(800),
	}
	l := NewLog(TyLogLotteryRoundClosed, RoundClosedAttrs(r))
	v, ok := l.Get("action")
	assert.True(t, ok)
	assert.Equal(t, EventRoundClosed, v)
	v, _ = l.Get("second_winner")
	assert.Equal(t, "alice", v)
	v, _ = l.Get("owner_amount")
	assert.Equal(t, "0", v)
	v, _ = l.Get("unassigned_remainder")
	assert.Equal(t, "800", v)
}
