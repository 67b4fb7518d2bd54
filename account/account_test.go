// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zemyblue/finschia-lottery/account"
	dbm "github.com/zemyblue/finschia-lottery/common/db"
	"github.com/zemyblue/finschia-lottery/executor"
	"github.com/zemyblue/finschia-lottery/types"
)

func newAccount(t *testing.T) (*account.DB, *executor.StateDB) {
	mem, err := dbm.NewGoMemDB("account", "", 128)
	require.NoError(t, err)
	statedb := executor.NewStateDB(mem)
	acc, err := account.NewCoinsAccount("cony", statedb)
	require.NoError(t, err)
	return acc, statedb
}

func TestNewCoinsAccount(t *testing.T) {
	_, err := account.NewCoinsAccount("", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	_, err = account.NewCoinsAccount("a-b", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)

	acc, _ := newAccount(t)
	assert.Equal(t, "cony", acc.Symbol())
	assert.Equal(t, []byte("mavl-coins-cony-alice"), acc.AccountKey("alice"))
}

func TestGenesisInit(t *testing.T) {
	acc, _ := newAccount(t)
	_, err := acc.GenesisInit("alice", types.Amount{})
	assert.Equal(t, types.ErrAmount, err)

	receipt, err := acc.GenesisInit("alice", types.NewAmount(1000))
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	v, _ := receipt.Logs[0].Get("amount")
	assert.Equal(t, "1000", v)

	_, err = acc.GenesisInit("alice", types.NewAmount(500))
	require.NoError(t, err)
	got := acc.LoadAccount("alice")
	assert.Equal(t, types.NewAmount(1500), got.Balance)
	assert.Equal(t, "cony", got.Currency)
}

func TestTransfer(t *testing.T) {
	acc, statedb := newAccount(t)
	_, err := acc.GenesisInit("alice", types.NewAmount(100))
	require.NoError(t, err)

	_, err = acc.Transfer("alice", "bob", types.Amount{})
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.Transfer("alice", "alice", types.NewAmount(1))
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.Transfer("alice", "bob", types.NewAmount(101))
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, types.ErrNoBalance, acc.CheckTransfer("alice", "bob", types.NewAmount(101)))
	assert.NoError(t, acc.CheckTransfer("alice", "bob", types.NewAmount(100)))

	statedb.Begin()
	receipt, err := acc.Transfer("alice", "bob", types.NewAmount(30))
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 2)
	assert.Len(t, receipt.FindLogs(types.TyLogTransfer), 1)
	require.NoError(t, statedb.Commit())

	accs := acc.LoadAccounts([]string{"alice", "bob", "carol"})
	assert.Equal(t, types.NewAmount(70), accs[0].Balance)
	assert.Equal(t, types.NewAmount(30), accs[1].Balance)
	assert.True(t, accs[2].Balance.IsZero())

	statedb.Begin()
	_, err = acc.Transfer("bob", "carol", types.NewAmount(30))
	require.NoError(t, err)
	statedb.Rollback()
	assert.Equal(t, types.NewAmount(30), acc.LoadAccount("bob").Balance)
	assert.True(t, acc.LoadAccount("carol").Balance.IsZero())
}
