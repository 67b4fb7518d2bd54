// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types lottery 执行器的交易、状态记录以及事件
package types

import (
	"github.com/zemyblue/finschia-lottery/types"
)

// LotteryX 执行器名字
const LotteryX = "lottery"

//Lottery op
const (
	LotteryActionInstantiate = 1 + iota
	LotteryActionDeposit
	LotteryActionCloseRound
	LotteryActionTransferToken
)

//log for lottery
const (
	TyLogLotteryInstantiate   = 901
	TyLogLotteryInvest        = 902
	TyLogLotteryRoundClosed   = 903
	TyLogLotteryRoundOpened   = 904
	TyLogLotteryTokenMint     = 905
	TyLogLotteryTokenTransfer = 906
)

// 列表查询
const (
	DefaultCount = uint32(20)  //默认一次取多少条记录
	MaxCount     = uint32(100) //最多取100条
)

// 默认的中奖下标，对投资人数取模
const (
	DefaultFirstIndex  = uint64(7)
	DefaultSecondIndex = uint64(8)
)

// 比例为百分比
const RatioBase = 100

var (
	actionName = map[string]int32{
		"Instantiate":   LotteryActionInstantiate,
		"Deposit":       LotteryActionDeposit,
		"CloseRound":    LotteryActionCloseRound,
		"TransferToken": LotteryActionTransferToken,
	}
	logMap = map[int32]string{
		TyLogLotteryInstantiate:   "LogLotteryInstantiate",
		TyLogLotteryInvest:        "LogLotteryInvest",
		TyLogLotteryRoundClosed:   "LogLotteryRoundClosed",
		TyLogLotteryRoundOpened:   "LogLotteryRoundOpened",
		TyLogLotteryTokenMint:     "LogLotteryTokenMint",
		TyLogLotteryTokenTransfer: "LogLotteryTokenTransfer",
	}
)

func init() {
	types.RegistorExecutor(LotteryX, NewType())
}

// LotteryType 交易类型
type LotteryType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *LotteryType {
	c := &LotteryType{}
	c.SetChild(c)
	return c
}

// GetName 名字
func (lottery *LotteryType) GetName() string {
	return LotteryX
}

// GetPayload 空的 payload
func (lottery *LotteryType) GetPayload() types.ActionValue {
	return &LotteryAction{}
}

// GetLogMap 日志类型
func (lottery *LotteryType) GetLogMap() map[int32]string {
	return logMap
}

// GetTypeMap action 名字
func (lottery *LotteryType) GetTypeMap() map[string]int32 {
	return actionName
}
