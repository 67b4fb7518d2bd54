// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
)

// ActionValue 交易 payload 的外层结构，只允许设置一个 action
type ActionValue interface {
	GetValue() (name string, value interface{}, err error)
}

// ExecutorType 执行器的交易类型描述
type ExecutorType interface {
	GetName() string
	// GetPayload 返回一个空的 payload，用于解码
	GetPayload() ActionValue
	GetTypeMap() map[string]int32
	GetLogMap() map[int32]string
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
}

// ExecTypeBase 执行器类型的公共实现，子类提供 GetPayload 等
type ExecTypeBase struct {
	child ExecutorType
}

// SetChild set child
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
}

// DecodePayload 解码 payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (ActionValue, error) {
	payload := base.child.GetPayload()
	if len(tx.Payload) == 0 {
		return nil, ErrEmptyTx
	}
	if err := json.Unmarshal(tx.Payload, payload); err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}
	return payload, nil
}

// DecodePayloadValue 返回 action 的名字以及 action 的值
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "", reflect.Value{}, err
	}
	name, value, err := payload.GetValue()
	if err != nil {
		return "", reflect.Value{}, err
	}
	if _, ok := base.child.GetTypeMap()[name]; !ok {
		return "", reflect.Value{}, errors.Wrapf(ErrActionNotSupport, "action %s", name)
	}
	return name, reflect.ValueOf(value), nil
}

// ActionName 交易的 action 名字，无法解码时为 unknown
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "unknown"
	}
	name, _, err := payload.GetValue()
	if err != nil {
		return "unknown"
	}
	return name
}

var executorMap = map[string]ExecutorType{}

// RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType " + exec)
	}
	executorMap[exec] = util
}

// LoadExecutorType 加载执行器类型
func LoadExecutorType(exec string) ExecutorType {
	if ety, exist := executorMap[exec]; exist {
		return ety
	}
	return nil
}

// LogName 日志类型的名字
func LogName(exec string, ty int32) string {
	ety := LoadExecutorType(exec)
	if ety != nil {
		if name, ok := ety.GetLogMap()[ty]; ok {
			return name
		}
	}
	switch ty {
	case TyLogTransfer:
		return "LogTransfer"
	case TyLogGenesis:
		return "LogGenesis"
	case TyLogDeposit:
		return "LogDeposit"
	}
	return "LogReserved"
}
