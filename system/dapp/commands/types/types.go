// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands中结构体定义
package types

import (
	"github.com/zemyblue/finschia-lottery/types"
)

// AccountResult defines account result command
type AccountResult struct {
	Currency string `json:"currency,omitempty"`
	Balance  string `json:"balance"`
	Addr     string `json:"addr,omitempty"`
}

// ReceiptLogResult 带名字的回执日志
type ReceiptLogResult struct {
	Ty         int32             `json:"ty"`
	TyName     string            `json:"tyName"`
	Attributes []types.Attribute `json:"attributes"`
}

// TransferResult 结算指令
type TransferResult struct {
	Denom  string `json:"denom"`
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// ReceiptResult 回执
type ReceiptResult struct {
	Ty        int32               `json:"ty"`
	Logs      []*ReceiptLogResult `json:"logs"`
	Transfers []*TransferResult   `json:"transfers,omitempty"`
}

// TxResult 交易执行结果
type TxResult struct {
	Hash       string         `json:"hash"`
	Height     int64          `json:"height"`
	Execer     string         `json:"execer"`
	Action     string         `json:"action"`
	From       string         `json:"from"`
	Funds      string         `json:"funds,omitempty"`
	Receipt    *ReceiptResult `json:"receipt"`
	Settlement *ReceiptResult `json:"settlement,omitempty"`
	SettleErr  string         `json:"settleErr,omitempty"`
}
