// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/zemyblue/finschia-lottery/common/db"
	host "github.com/zemyblue/finschia-lottery/executor"
	drivers "github.com/zemyblue/finschia-lottery/system/dapp"
	cty "github.com/zemyblue/finschia-lottery/system/dapp/coins/types"
	"github.com/zemyblue/finschia-lottery/types"
)

func newTestCoins(t *testing.T) drivers.Driver {
	mem, err := dbm.NewGoMemDB("coins", "", 128)
	require.NoError(t, err)
	c := newCoins()
	c.SetStateDB(host.NewStateDB(mem))
	c.SetEnv(1, 0)
	return c
}

func execCoins(t *testing.T, c drivers.Driver, from string, action *cty.CoinsAction) (*types.Receipt, error) {
	tx, err := types.NewTransaction(cty.CoinsX, action, from)
	require.NoError(t, err)
	if err := c.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	return c.Exec(tx, 0)
}

func balance(t *testing.T, c drivers.Driver, addrs ...string) []types.Amount {
	params, err := json.Marshal(&cty.ReqBalance{Denom: "cony", Addresses: addrs})
	require.NoError(t, err)
	reply, err := c.Query("GetBalance", params)
	require.NoError(t, err)
	var out []types.Amount
	for _, acc := range reply.(*cty.ReplyBalance).Accounts {
		out = append(out, acc.Balance)
	}
	return out
}

func TestCoinsGenesisAndTransfer(t *testing.T) {
	c := newTestCoins(t)
	receipt, err := execCoins(t, c, "admin", &cty.CoinsAction{Genesis: &cty.CoinsGenesis{Denom: "cony", To: "alice", Amount: types.NewAmount(100)}})
	require.NoError(t, err)
	assert.Len(t, receipt.FindLogs(types.TyLogGenesis), 1)

	receipt, err = execCoins(t, c, "alice", &cty.CoinsAction{Transfer: &cty.CoinsTransfer{Denom: "cony", To: "bob", Amount: types.NewAmount(40)}})
	require.NoError(t, err)
	assert.Len(t, receipt.FindLogs(types.TyLogTransfer), 1)
	assert.Equal(t, []types.Amount{types.NewAmount(60), types.NewAmount(40)}, balance(t, c, "alice", "bob"))

	_, err = execCoins(t, c, "alice", &cty.CoinsAction{Transfer: &cty.CoinsTransfer{Denom: "cony", To: "bob", Amount: types.NewAmount(61)}})
	assert.Equal(t, types.ErrNoBalance, errors.Cause(err))
	_, err = execCoins(t, c, "alice", &cty.CoinsAction{Transfer: &cty.CoinsTransfer{Denom: "cony", Amount: types.NewAmount(1)}})
	assert.Equal(t, types.ErrInvalidParam, errors.Cause(err))
	_, err = execCoins(t, c, "alice", &cty.CoinsAction{Transfer: &cty.CoinsTransfer{Denom: "co-ny", To: "bob", Amount: types.NewAmount(1)}})
	assert.Equal(t, types.ErrSymbolNameNotAllow, errors.Cause(err))
	_, err = execCoins(t, c, "alice", &cty.CoinsAction{})
	assert.Equal(t, types.ErrActionNotSupport, errors.Cause(err))
}

func TestCoinsGenesisAddr(t *testing.T) {
	cfg.GenesisAddr = "admin"
	defer func() { cfg.GenesisAddr = "" }()
	c := newTestCoins(t)
	_, err := execCoins(t, c, "alice", &cty.CoinsAction{Genesis: &cty.CoinsGenesis{Denom: "cony", To: "alice", Amount: types.NewAmount(1)}})
	assert.Equal(t, types.ErrNoPrivilege, errors.Cause(err))
	_, err = execCoins(t, c, "admin", &cty.CoinsAction{Genesis: &cty.CoinsGenesis{Denom: "cony", To: "alice", Amount: types.NewAmount(1)}})
	assert.NoError(t, err)
}

func TestCoinsRejectFunds(t *testing.T) {
	c := newTestCoins(t)
	tx, err := types.NewTransaction(cty.CoinsX, &cty.CoinsAction{Transfer: &cty.CoinsTransfer{Denom: "cony", To: "bob"}}, "alice", types.NewCoin(1, "cony"))
	require.NoError(t, err)
	assert.Equal(t, types.ErrInvalidParam, c.CheckTx(tx, 0))
}

func TestCoinsQueryExecer(t *testing.T) {
	c := newTestCoins(t)
	reply, err := c.Query("GetBalance", []byte(`{"denom":"cony","execer":"lottery"}`))
	require.NoError(t, err)
	accounts := reply.(*cty.ReplyBalance).Accounts
	require.Len(t, accounts, 1)
	assert.Equal(t, drivers.ExecAddress("lottery"), accounts[0].Addr)
	assert.True(t, accounts[0].Balance.IsZero())
}
