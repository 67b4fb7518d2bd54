// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 单节点宿主：顺序执行交易，每笔交易是一个原子单元
package executor

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/zemyblue/finschia-lottery/account"
	dbm "github.com/zemyblue/finschia-lottery/common/db"
	clog "github.com/zemyblue/finschia-lottery/common/log"
	"github.com/zemyblue/finschia-lottery/metrics"
	"github.com/zemyblue/finschia-lottery/pluginmgr"
	drivers "github.com/zemyblue/finschia-lottery/system/dapp"
	"github.com/zemyblue/finschia-lottery/types"
)

var elog = clog.New("module", "execs")

// 宿主自己的状态，不在任何执行器的前缀下
var heightKey = []byte("executor-height")

// ExecResult 一笔交易的执行结果
type ExecResult struct {
	Hash    []byte
	Height  int64
	Receipt *types.Receipt
	// 提交之后的资产结算，失败时 SettleErr 不为空，交易本身依然生效
	Settlement *types.Receipt
	SettleErr  error
}

// Executor 执行器
type Executor struct {
	mu     sync.Mutex
	cfg    *types.Config
	db     dbm.DB
	height int64
	sink   PayoutSink
}

// New 打开配置中的数据库，并初始化所有插件
func New(cfg *types.Config, sub *types.ConfigSubModule) (*Executor, error) {
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, err
	}
	exec, err := NewWithDB(cfg, sub, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return exec, nil
}

// NewWithDB 使用已经打开的数据库
func NewWithDB(cfg *types.Config, sub *types.ConfigSubModule, db dbm.DB) (*Executor, error) {
	if sub == nil {
		sub = &types.ConfigSubModule{}
	}
	pluginmgr.InitExec(sub.Exec)
	metrics.StartMetrics(cfg.Metrics)

	exec := &Executor{cfg: cfg, db: db, sink: CoinsSink{}}
	value, err := db.Get(heightKey)
	switch {
	case err == dbm.ErrNotFoundInDb:
	case err != nil:
		return nil, err
	case len(value) != 8:
		return nil, errors.Wrap(types.ErrDecode, "executor height")
	default:
		exec.height = int64(binary.BigEndian.Uint64(value))
	}
	elog.Info("executor open", "driver", cfg.Store.Driver, "height", exec.height)
	return exec, nil
}

// SetSink 替换结算方式
func (exec *Executor) SetSink(sink PayoutSink) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	exec.sink = sink
}

// Height 已经执行的交易数
func (exec *Executor) Height() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.height
}

// Close 关闭数据库
func (exec *Executor) Close() {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	exec.db.Close()
}

func (exec *Executor) checkFrom(tx *types.Transaction) error {
	if tx.From == "" {
		return errors.Wrap(types.ErrInvalidParam, "empty from")
	}
	if exec.cfg.Exec != nil && exec.cfg.Exec.StrictAddress {
		return drivers.CheckAddress(tx.From, exec.height)
	}
	return nil
}

func (exec *Executor) loadDriver(execer string, height int64, statedb *StateDB) (drivers.Driver, error) {
	driver, err := drivers.LoadDriver(execer, height)
	if err != nil {
		return nil, errors.Wrapf(err, "execer %s", execer)
	}
	driver.SetStateDB(statedb)
	driver.SetEnv(height, time.Now().Unix())
	return driver, nil
}

// ExecTx 执行一笔交易
//
// 附带资产转入执行器地址与执行器的写入在同一个事务中，任何一步失败都整体回滚。
// 成功之后的资产结算是第二个事务，失败不影响已经提交的交易。
func (exec *Executor) ExecTx(tx *types.Transaction) (*ExecResult, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()

	execer := string(tx.Execer)
	height := exec.height + 1
	if err := exec.checkFrom(tx); err != nil {
		return nil, err
	}
	statedb := NewStateDB(exec.db)
	driver, err := exec.loadDriver(execer, height, statedb)
	if err != nil {
		return nil, err
	}
	if err := driver.Allow(tx, 0); err != nil {
		return nil, err
	}
	action := driver.GetActionName(tx)
	timer := metrics.ExecTimer(execer, action)
	start := time.Now()
	defer func() { timer.UpdateSince(start) }()

	if err := driver.CheckTx(tx, 0); err != nil {
		metrics.ExecCounter(execer, action, false).Inc(1)
		elog.Debug("ExecTx CheckTx", "execer", execer, "action", action, "err", err)
		return nil, err
	}

	statedb.Begin()
	receipt, err := exec.execTx(driver, statedb, tx)
	if err != nil {
		statedb.Rollback()
		metrics.ExecCounter(execer, action, false).Inc(1)
		elog.Error("ExecTx", "execer", execer, "action", action, "from", tx.From, "err", err)
		return nil, err
	}
	if err := statedb.Commit(); err != nil {
		return nil, err
	}
	if err := statedb.Flush(heightKV(height)); err != nil {
		return nil, err
	}
	exec.height = height
	metrics.ExecCounter(execer, action, true).Inc(1)

	result := &ExecResult{Hash: tx.Hash(), Height: height, Receipt: receipt}
	if len(receipt.Transfers) > 0 {
		result.Settlement, result.SettleErr = exec.settle(statedb, receipt.Transfers)
	}
	elog.Info("ExecTx", "execer", execer, "action", action, "height", height, "kvs", len(receipt.KV), "logs", len(receipt.Logs))
	return result, nil
}

func (exec *Executor) execTx(driver drivers.Driver, statedb *StateDB, tx *types.Transaction) (*types.Receipt, error) {
	receipt := &types.Receipt{Ty: types.ExecOk}
	custody := drivers.ExecAddress(driver.GetName())
	for _, coin := range tx.Funds {
		if coin.Amount.IsZero() {
			continue
		}
		acc, err := account.NewCoinsAccount(coin.Denom, statedb)
		if err != nil {
			return nil, err
		}
		r, err := acc.Transfer(tx.From, custody, coin.Amount)
		if err != nil {
			return nil, errors.Wrapf(err, "attach %s", coin)
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	r, err := driver.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.Wrap(types.ErrMethodReturnType, "nil receipt")
	}
	receipt = types.MergeReceipt(receipt, r)
	receipt.Ty = types.ExecOk
	return receipt, nil
}

func (exec *Executor) settle(statedb *StateDB, transfers []*types.Transfer) (*types.Receipt, error) {
	statedb.Begin()
	receipt, err := exec.sink.Settle(statedb, transfers)
	if err != nil {
		statedb.Rollback()
		elog.Error("settle", "transfers", len(transfers), "err", err)
		return nil, err
	}
	if err := statedb.Commit(); err != nil {
		return nil, err
	}
	if err := statedb.Flush(); err != nil {
		return nil, err
	}
	return receipt, nil
}

// Query 只读查询，params 为 json 编码的请求
func (exec *Executor) Query(execer, funcName string, params []byte) (interface{}, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	driver, err := exec.loadDriver(execer, -1, NewStateDB(exec.db))
	if err != nil {
		return nil, err
	}
	return driver.Query(funcName, params)
}

func heightKV(height int64) *types.KeyValue {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(height))
	return &types.KeyValue{Key: heightKey, Value: value}
}
