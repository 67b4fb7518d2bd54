// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/zemyblue/finschia-lottery/common"
)

// Coin 一种资产的数量
type Coin struct {
	Denom  string `json:"denom"`
	Amount Amount `json:"amount"`
}

// NewCoin new
func NewCoin(amount uint64, denom string) *Coin {
	return &Coin{Denom: denom, Amount: NewAmount(amount)}
}

func (c *Coin) String() string {
	return c.Amount.String() + c.Denom
}

// Marshal wire 编码
func (c *Coin) Marshal() []byte {
	return NewEncoder().String(1, c.Denom).Amount(2, c.Amount).Data()
}

// Unmarshal wire 解码
func (c *Coin) Unmarshal(data []byte) error {
	return Walk(data, func(f Field) error {
		var err error
		switch f.Num {
		case 1:
			c.Denom = f.String()
		case 2:
			c.Amount, err = f.Amount()
		}
		return err
	})
}

// ParseCoins parses "1000cony,5earth"
func ParseCoins(s string) ([]*Coin, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var coins []*Coin
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		i := strings.IndexFunc(part, func(r rune) bool { return !unicode.IsDigit(r) })
		if i <= 0 {
			return nil, errors.Wrapf(ErrInvalidParam, "coin %q", part)
		}
		amount, err := ParseAmount(part[:i])
		if err != nil {
			return nil, err
		}
		coins = append(coins, &Coin{Denom: part[i:], Amount: amount})
	}
	return coins, nil
}

// Transaction 一次请求：执行器名称，JSON 编码的 action，调用者以及随交易附带的资产
type Transaction struct {
	Execer  []byte
	Payload []byte
	From    string
	Funds   []*Coin
	Nonce   int64
}

// NewTransaction encodes action as the payload
func NewTransaction(execer string, action interface{}, from string, funds ...*Coin) (*Transaction, error) {
	payload, err := json.Marshal(action)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidParam, err.Error())
	}
	return &Transaction{Execer: []byte(execer), Payload: payload, From: from, Funds: funds}, nil
}

// Marshal wire 编码
func (tx *Transaction) Marshal() []byte {
	enc := NewEncoder().Bytes(1, tx.Execer).Bytes(2, tx.Payload).String(3, tx.From)
	for _, c := range tx.Funds {
		enc.Message(4, c)
	}
	return enc.Int64(5, tx.Nonce).Data()
}

// Unmarshal wire 解码
func (tx *Transaction) Unmarshal(data []byte) error {
	return Walk(data, func(f Field) error {
		switch f.Num {
		case 1:
			tx.Execer = f.Bytes()
		case 2:
			tx.Payload = f.Bytes()
		case 3:
			tx.From = f.String()
		case 4:
			var c Coin
			if err := c.Unmarshal(f.Raw); err != nil {
				return err
			}
			tx.Funds = append(tx.Funds, &c)
		case 5:
			tx.Nonce = f.Int64()
		}
		return nil
	})
}

// Hash 交易哈希
func (tx *Transaction) Hash() []byte {
	return common.Sha256(tx.Marshal())
}

// FundsString 资产列表的可读形式，按 denom 排序
func (tx *Transaction) FundsString() string {
	parts := make([]string, 0, len(tx.Funds))
	for _, c := range tx.Funds {
		parts = append(parts, c.String())
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
