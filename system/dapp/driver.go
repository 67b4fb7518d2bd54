// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的公共部分，按 action 名字反射调用 Exec_ 和 Query_ 方法
package dapp

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
	"github.com/zemyblue/finschia-lottery/account"
	"github.com/zemyblue/finschia-lottery/common/address"
	dbm "github.com/zemyblue/finschia-lottery/common/db"
	"github.com/zemyblue/finschia-lottery/common/log"
	"github.com/zemyblue/finschia-lottery/types"
)

var blog = log.New("module", "execs.base")

// Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KVDB)
	GetStateDB() dbm.KVDB
	GetCoinsAccount(denom string) (*account.DB, error)
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	//执行器的名称
	GetName() string
	SetName(string)
	Allow(tx *types.Transaction, index int) error
	GetActionName(tx *types.Transaction) string
	SetEnv(height, blocktime int64)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	Query(funcName string, params []byte) (interface{}, error)
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

// DriverBase 执行器驱动的公共实现，子类通过 SetChild 注册自己
type DriverBase struct {
	statedb    dbm.KVDB
	height     int64
	blocktime  int64
	name       string
	child      Driver
	childValue reflect.Value
	funcmap    map[string]reflect.Method
	ety        types.ExecutorType
}

// GetExecutorType 交易类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

// SetExecutorType set
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

// GetFuncMap 子类导出的方法
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

// SetEnv 区块高度和时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// SetChild 设置子类，并缓存子类的方法列表
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcmap = types.ListMethod(e)
}

// CheckAddress 执行器地址或者合法的 base58 地址
func CheckAddress(addr string, height int64) error {
	if IsDriverAddress(addr, height) {
		return nil
	}
	return address.CheckAddress(addr)
}

// Exec 解码 payload，调用子类的 Exec_<action>(action, tx, index)
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", string(tx.Execer), "info", r)
			err = errors.Wrapf(types.ErrActionNotSupport, "panic: %v", r)
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcmap := d.child.GetFuncMap()
	funcname := "Exec_" + name
	if _, ok := funcmap[funcname]; !ok {
		return nil, errors.Wrapf(types.ErrActionNotSupport, "func %s", funcname)
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.Receipt); ok {
			receipt = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	//参数2
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return receipt, err
}

// Query 调用子类的 Query_<funcName>(*Req)，params 为 json 编码的请求
func (d *DriverBase) Query(funcname string, params []byte) (reply interface{}, err error) {
	funcmap := d.child.GetFuncMap()
	funcname = "Query_" + funcname
	if _, ok := funcmap[funcname]; !ok {
		blog.Error(funcname+" funcname not find", "func", funcname)
		return nil, errors.Wrapf(types.ErrActionNotSupport, "func %s", funcname)
	}
	ty := funcmap[funcname].Type
	if ty.NumIn() != 2 {
		blog.Error(funcname+" err num in param", "num", ty.NumIn())
		return nil, types.ErrActionNotSupport
	}
	paramin := ty.In(1)
	if paramin.Kind() != reflect.Ptr {
		blog.Error(funcname + "  param is not pointer")
		return nil, types.ErrActionNotSupport
	}
	in := reflect.New(paramin.Elem()).Interface()
	if len(params) > 0 {
		if err := json.Unmarshal(params, in); err != nil {
			return nil, errors.Wrap(types.ErrDecode, err.Error())
		}
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call query error", "func", funcname, "info", r)
			err = errors.Wrapf(types.ErrActionNotSupport, "panic: %v", r)
			reply = nil
		}
	}()
	return types.CallQueryFunc(d.childValue, funcmap[funcname], in)
}

// CheckTx 默认不做额外检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// SetStateDB set
func (d *DriverBase) SetStateDB(db dbm.KVDB) {
	d.statedb = db
}

// GetStateDB get
func (d *DriverBase) GetStateDB() dbm.KVDB {
	return d.statedb
}

// GetHeight 当前高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetName 执行器名称，未设置时为驱动名
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

// SetName set
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetActionName action 名字
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	return d.ety.ActionName(tx)
}

// GetCoinsAccount 某个 denom 的原生资产账户，使用当前的 statedb
func (d *DriverBase) GetCoinsAccount(denom string) (*account.DB, error) {
	return account.NewCoinsAccount(denom, d.statedb)
}
