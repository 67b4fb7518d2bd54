// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lottery_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/zemyblue/finschia-lottery/common/db"
	"github.com/zemyblue/finschia-lottery/executor"
	"github.com/zemyblue/finschia-lottery/metrics"
	_ "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery"
	ty "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/types"
	drivers "github.com/zemyblue/finschia-lottery/system/dapp"
	_ "github.com/zemyblue/finschia-lottery/system/dapp/coins"
	cty "github.com/zemyblue/finschia-lottery/system/dapp/coins/types"
	"github.com/zemyblue/finschia-lottery/types"
)

const owner = "owner"

type node struct {
	t    *testing.T
	db   dbm.DB
	cfg  *types.Config
	sub  *types.ConfigSubModule
	exec *executor.Executor
}

func newNode(t *testing.T) *node {
	cfg, sub := types.MustInitCfgString(types.DefaultCfgString())
	cfg.Metrics.EnableMetrics = true
	db, err := dbm.NewGoMemDB("lottery", "", 128)
	require.NoError(t, err)
	exec, err := executor.NewWithDB(cfg, sub, db)
	require.NoError(t, err)
	return &node{t: t, db: db, cfg: cfg, sub: sub, exec: exec}
}

func (n *node) send(execer string, action interface{}, from string, funds ...*types.Coin) (*executor.ExecResult, error) {
	tx, err := types.NewTransaction(execer, action, from, funds...)
	require.NoError(n.t, err)
	return n.exec.ExecTx(tx)
}

func (n *node) mustSend(execer string, action interface{}, from string, funds ...*types.Coin) *executor.ExecResult {
	result, err := n.send(execer, action, from, funds...)
	require.NoError(n.t, err)
	return result
}

func (n *node) genesis(to string, amount uint64) {
	n.mustSend(cty.CoinsX, &cty.CoinsAction{Genesis: &cty.CoinsGenesis{Denom: "cony", To: to, Amount: types.NewAmount(amount)}}, "admin")
}

func (n *node) coins(addr string) types.Amount {
	reply, err := n.exec.Query(cty.CoinsX, "GetBalance", []byte(`{"denom":"cony","addresses":["`+addr+`"]}`))
	require.NoError(n.t, err)
	return reply.(*cty.ReplyBalance).Accounts[0].Balance
}

func (n *node) query(funcName, params string) interface{} {
	reply, err := n.exec.Query(ty.LotteryX, funcName, []byte(params))
	require.NoError(n.t, err)
	return reply
}

func (n *node) instantiate() {
	n.mustSend(ty.LotteryX, &ty.LotteryAction{Instantiate: &ty.Instantiate{
		UseDenom:          "cony",
		ExchangeRatio:     types.NewAmount(10),
		FirstWinnerRatio:  60,
		SecondWinnerRatio: 20,
		OwnerRatio:        2,
		TokenName:         "lottery",
		TokenSymbol:       "LTT",
		TokenDecimals:     6,
	}}, owner)
}

func (n *node) deposit(from string, funds ...*types.Coin) (*executor.ExecResult, error) {
	return n.send(ty.LotteryX, &ty.LotteryAction{Deposit: &ty.Deposit{}}, from, funds...)
}

func cony(amount uint64) *types.Coin {
	return types.NewCoin(amount, "cony")
}

func TestLotteryRound(t *testing.T) {
	n := newNode(t)
	investors := []string{"alice", "bob", "carol", "dave"}
	for _, who := range investors {
		n.genesis(who, 10000)
	}
	n.instantiate()
	custody := drivers.ExecAddress(ty.LotteryX)

	for _, who := range investors {
		result, err := n.deposit(who, cony(1000))
		require.NoError(t, err)
		assert.Len(t, result.Receipt.FindLogs(types.TyLogTransfer), 1)
		assert.Len(t, result.Receipt.FindLogs(ty.TyLogLotteryInvest), 1)
		assert.Nil(t, result.Settlement)
	}
	assert.Equal(t, types.NewAmount(9000), n.coins("alice"))
	assert.Equal(t, types.NewAmount(4000), n.coins(custody))
	assert.Equal(t, types.NewAmount(40000), n.query("TotalSupply", "").(*ty.ReplyTotalSupply).TotalSupply)
	assert.Equal(t, types.NewAmount(10000), n.query("BalanceOf", `{"who":"carol"}`).(*ty.ReplyBalance).Balance)

	_, err := n.send(ty.LotteryX, &ty.LotteryAction{CloseRound: &ty.CloseRound{}}, "alice")
	assert.Equal(t, ty.ErrUnauthorized, errors.Cause(err))

	result := n.mustSend(ty.LotteryX, &ty.LotteryAction{CloseRound: &ty.CloseRound{}}, owner)
	require.NoError(t, result.SettleErr)
	require.NotNil(t, result.Settlement)
	assert.Len(t, result.Settlement.FindLogs(types.TyLogTransfer), 3)

	assert.Equal(t, types.NewAmount(11400), n.coins("dave"))
	assert.Equal(t, types.NewAmount(9800), n.coins("alice"))
	assert.Equal(t, types.NewAmount(80), n.coins(owner))
	assert.Equal(t, types.NewAmount(720), n.coins(custody))

	settled := n.query("SettlementResult", `{"round":1}`).(*ty.ReplySettlement)
	assert.Equal(t, "dave", settled.FirstWinner.Addr)
	assert.Equal(t, "alice", settled.SecondWinner.Addr)
	assert.Equal(t, types.NewAmount(720), settled.UnassignedRemainder)
	assert.NotEmpty(t, settled.SelectionProof)

	assert.Equal(t, uint64(2), n.query("CurrentRound", "").(*ty.ReplyCurrentRound).Round)
	history := n.query("ListInvestors", `{"round":1}`).(*ty.ReplyInvestors)
	assert.Len(t, history.Investors, 4)

	snapshot := metrics.Snapshot()
	assert.Contains(t, snapshot, "lottery.exec.Deposit.ok")
	assert.Contains(t, snapshot, "lottery.exec.CloseRound.err")
}

func TestDepositFundsRejected(t *testing.T) {
	n := newNode(t)
	n.genesis("alice", 500)
	n.instantiate()
	height := n.exec.Height()

	_, err := n.deposit("alice")
	assert.Equal(t, ty.ErrNoFunds, errors.Cause(err))
	_, err = n.deposit("alice", cony(1), types.NewCoin(1, "earth"))
	assert.Equal(t, ty.ErrMultipleDenoms, errors.Cause(err))
	_, err = n.deposit("alice", types.NewCoin(1, "earth"))
	assert.Equal(t, ty.ErrMissingDenom, errors.Cause(err))

	// 附带资产不足时整笔交易回滚
	_, err = n.deposit("alice", cony(501))
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))
	assert.Equal(t, types.NewAmount(500), n.coins("alice"))
	r := n.query("CurrentInvestment", "").(*ty.Round)
	assert.True(t, r.TotalAmount.IsZero())
	assert.Empty(t, n.query("ListInvestors", "").(*ty.ReplyInvestors).Investors)
	assert.Equal(t, height, n.exec.Height())

	_, err = n.send(ty.LotteryX, &ty.LotteryAction{CloseRound: &ty.CloseRound{}}, owner)
	assert.Equal(t, ty.ErrNoInvestors, errors.Cause(err))
}

func TestTransferTokenAtomic(t *testing.T) {
	n := newNode(t)
	n.genesis("alice", 100)
	n.instantiate()
	_, err := n.deposit("alice", cony(100))
	require.NoError(t, err)

	_, err = n.send(ty.LotteryX, &ty.LotteryAction{TransferToken: &ty.TransferToken{To: "bob", Amount: types.NewAmount(1001)}}, "alice")
	assert.Equal(t, ty.ErrInsufficientBalance, errors.Cause(err))
	assert.Equal(t, types.NewAmount(1000), n.query("BalanceOf", `{"who":"alice"}`).(*ty.ReplyBalance).Balance)
	assert.True(t, n.query("BalanceOf", `{"who":"bob"}`).(*ty.ReplyBalance).Balance.IsZero())

	_, err = n.send(ty.LotteryX, &ty.LotteryAction{TransferToken: &ty.TransferToken{To: "bob", Amount: types.NewAmount(1)}}, "alice", cony(1))
	assert.Equal(t, types.ErrInvalidParam, errors.Cause(err))

	n.mustSend(ty.LotteryX, &ty.LotteryAction{TransferToken: &ty.TransferToken{To: "bob", Amount: types.NewAmount(250)}}, "alice")
	assert.Equal(t, types.NewAmount(250), n.query("BalanceOf", `{"who":"bob"}`).(*ty.ReplyBalance).Balance)
	assert.Equal(t, types.NewAmount(1000), n.query("TotalSupply", "").(*ty.ReplyTotalSupply).TotalSupply)
}

func TestSettleFailureKeepsClose(t *testing.T) {
	n := newNode(t)
	n.genesis("alice", 100)
	n.instantiate()
	_, err := n.deposit("alice", cony(100))
	require.NoError(t, err)

	n.exec.SetSink(executor.SinkFunc(func(kv dbm.KV, transfers []*types.Transfer) (*types.Receipt, error) {
		return nil, types.ErrNoBalance
	}))
	result := n.mustSend(ty.LotteryX, &ty.LotteryAction{CloseRound: &ty.CloseRound{}}, owner)
	assert.Equal(t, types.ErrNoBalance, result.SettleErr)
	assert.Nil(t, result.Settlement)
	require.Len(t, result.Receipt.Transfers, 3)

	assert.Equal(t, uint64(2), n.query("CurrentRound", "").(*ty.ReplyCurrentRound).Round)
	assert.Equal(t, types.NewAmount(100), n.coins(drivers.ExecAddress(ty.LotteryX)))
}

func TestHeightPersisted(t *testing.T) {
	n := newNode(t)
	n.genesis("alice", 100)
	n.instantiate()
	assert.Equal(t, int64(2), n.exec.Height())

	reopened, err := executor.NewWithDB(n.cfg, n.sub, n.db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reopened.Height())
	reply, err := reopened.Query(ty.LotteryX, "ContractInfo", nil)
	require.NoError(t, err)
	assert.Equal(t, owner, reply.(*ty.ContractInfo).Owner)
}

func TestInstantiateOnce(t *testing.T) {
	n := newNode(t)
	n.instantiate()
	_, err := n.send(ty.LotteryX, &ty.LotteryAction{Instantiate: &ty.Instantiate{
		UseDenom: "cony", ExchangeRatio: types.NewAmount(1), TokenName: "x", TokenSymbol: "X",
	}}, "bob")
	assert.Equal(t, ty.ErrAlreadyExists, errors.Cause(err))
	assert.Equal(t, owner, n.query("ContractInfo", "").(*ty.ContractInfo).Owner)
}
