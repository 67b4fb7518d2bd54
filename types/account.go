// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Account 某种资产在一个地址上的余额
type Account struct {
	Currency string `json:"currency"`
	Balance  Amount `json:"balance"`
	Addr     string `json:"addr"`
}

// Marshal wire 编码
func (acc *Account) Marshal() []byte {
	return NewEncoder().String(1, acc.Currency).Amount(2, acc.Balance).String(3, acc.Addr).Data()
}

// Unmarshal wire 解码
func (acc *Account) Unmarshal(data []byte) error {
	return Walk(data, func(f Field) error {
		var err error
		switch f.Num {
		case 1:
			acc.Currency = f.String()
		case 2:
			acc.Balance, err = f.Amount()
		case 3:
			acc.Addr = f.String()
		}
		return err
	})
}

// GetBalance 余额
func (acc *Account) GetBalance() Amount {
	if acc == nil {
		return Amount{}
	}
	return acc.Balance
}
