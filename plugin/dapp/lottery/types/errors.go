// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrInvalidParams 创世参数不合法
	ErrInvalidParams = errors.New("ErrInvalidParams")
	// ErrUnauthorized 只有 owner 可以操作
	ErrUnauthorized = errors.New("ErrUnauthorized")
	// ErrInvalidRound 轮次不存在或者已经关闭
	ErrInvalidRound = errors.New("ErrInvalidRound")
	// ErrAlreadyExists 记录已经存在
	ErrAlreadyExists = errors.New("ErrAlreadyExists")
	// ErrAlreadyClosed 轮次已经关闭
	ErrAlreadyClosed = errors.New("ErrAlreadyClosed")
	// ErrRoundStillOpen 轮次还没有结算，稍后再查
	ErrRoundStillOpen = errors.New("ErrRoundStillOpen")
	// ErrNoFunds 投资没有附带资产
	ErrNoFunds = errors.New("ErrNoFunds")
	// ErrMultipleDenoms 附带了多种资产
	ErrMultipleDenoms = errors.New("ErrMultipleDenoms")
	// ErrMissingDenom 附带资产不是 use_denom
	ErrMissingDenom = errors.New("ErrMissingDenom")
	// ErrInsufficientBalance token 余额不足
	ErrInsufficientBalance = errors.New("ErrInsufficientBalance")
	// ErrInvalidAmount 转账数量为 0
	ErrInvalidAmount = errors.New("ErrInvalidAmount")
	// ErrArithmeticOverflow 数量超过 u128 上限
	ErrArithmeticOverflow = errors.New("ErrArithmeticOverflow")
	// ErrNoInvestors 没有投资人的轮次不能关闭
	ErrNoInvestors = errors.New("ErrNoInvestors")
	// ErrNotInstantiated 还没有创世
	ErrNotInstantiated = errors.New("ErrNotInstantiated")
)
