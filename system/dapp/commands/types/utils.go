// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/zemyblue/finschia-lottery/common"
	"github.com/zemyblue/finschia-lottery/types"
)

// FormatAmount 按精度显示数量，decimals 为 0 时就是整数
func FormatAmount(amount types.Amount, decimals int32) string {
	return decimal.NewFromBigInt(amount.BigInt(), -decimals).String()
}

// ParseAmount 解析带小数的数量，按精度转为整数，多余的小数位报错
func ParseAmount(s string, decimals int32) (types.Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return types.Amount{}, errors.Wrapf(types.ErrAmount, "parse %q", s)
	}
	if d.Sign() < 0 {
		return types.Amount{}, errors.Wrapf(types.ErrAmount, "negative %q", s)
	}
	d = d.Shift(decimals)
	if !d.Equal(d.Truncate(0)) {
		return types.Amount{}, errors.Wrapf(types.ErrAmount, "%q has more than %d decimals", s, decimals)
	}
	return types.ParseAmount(d.Truncate(0).String())
}

// DecodeAccount 账户显示
func DecodeAccount(acc *types.Account, decimals int32) *AccountResult {
	return &AccountResult{
		Currency: acc.Currency,
		Balance:  FormatAmount(acc.Balance, decimals),
		Addr:     acc.Addr,
	}
}

// DecodeReceipt 日志类型转为名字
func DecodeReceipt(execer string, receipt *types.Receipt) *ReceiptResult {
	if receipt == nil {
		return nil
	}
	result := &ReceiptResult{Ty: receipt.Ty}
	for _, l := range receipt.Logs {
		result.Logs = append(result.Logs, &ReceiptLogResult{
			Ty:         l.Ty,
			TyName:     types.LogName(execer, l.Ty),
			Attributes: l.Attributes,
		})
	}
	for _, t := range receipt.Transfers {
		result.Transfers = append(result.Transfers, &TransferResult{
			Denom:  t.Denom,
			From:   t.From,
			To:     t.To,
			Amount: t.Amount.String(),
		})
	}
	return result
}

// DecodeTransaction 交易执行结果
func DecodeTransaction(tx *types.Transaction, action string, height int64, receipt *types.Receipt) *TxResult {
	return &TxResult{
		Hash:    common.ToHex(tx.Hash()),
		Height:  height,
		Execer:  string(tx.Execer),
		Action:  action,
		From:    tx.From,
		Funds:   tx.FundsString(),
		Receipt: DecodeReceipt(string(tx.Execer), receipt),
	}
}
