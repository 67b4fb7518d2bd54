// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// AmountBytes 128 位数量的定长编码长度
const AmountBytes = 16

var maxAmount = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))

// Amount is an unsigned 128-bit quantity. All arithmetic is checked.
type Amount struct {
	v uint256.Int
}

// NewAmount returns an amount holding v
func NewAmount(v uint64) Amount {
	var a Amount
	a.v.SetUint64(v)
	return a
}

// MaxAmount returns 2^128-1
func MaxAmount() Amount {
	var a Amount
	a.v.Set(maxAmount)
	return a
}

// ParseAmount parses a base-10 string
func ParseAmount(s string) (Amount, error) {
	var a Amount
	if err := a.v.SetFromDecimal(s); err != nil {
		return Amount{}, errors.Wrapf(ErrAmount, "parse %q: %v", s, err)
	}
	if a.v.Gt(maxAmount) {
		return Amount{}, errors.Wrapf(ErrOverflow, "parse %q", s)
	}
	return a, nil
}

// MustParseAmount is ParseAmount that panics, for constants and tests
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AmountFromBytes decodes the fixed big-endian encoding
func AmountFromBytes(b []byte) (Amount, error) {
	if len(b) > AmountBytes {
		return Amount{}, errors.Wrapf(ErrDecode, "amount length %d", len(b))
	}
	var a Amount
	a.v.SetBytes(b)
	return a, nil
}

// IsZero reports a == 0
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Cmp returns -1, 0 or +1
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// Add returns a+b or ErrOverflow
func (a Amount) Add(b Amount) (Amount, error) {
	var z Amount
	z.v.Add(&a.v, &b.v)
	if z.v.Gt(maxAmount) {
		return Amount{}, errors.Wrapf(ErrOverflow, "%s + %s", a, b)
	}
	return z, nil
}

// Sub returns a-b or ErrUnderflow
func (a Amount) Sub(b Amount) (Amount, error) {
	var z Amount
	if _, underflow := z.v.SubOverflow(&a.v, &b.v); underflow {
		return Amount{}, errors.Wrapf(ErrUnderflow, "%s - %s", a, b)
	}
	return z, nil
}

// Mul returns a*b or ErrOverflow
func (a Amount) Mul(b Amount) (Amount, error) {
	var z Amount
	if _, overflow := z.v.MulOverflow(&a.v, &b.v); overflow || z.v.Gt(maxAmount) {
		return Amount{}, errors.Wrapf(ErrOverflow, "%s * %s", a, b)
	}
	return z, nil
}

// MulDiv returns floor(a*num/den). a < 2^128 and num < 2^64 so the product fits in 256 bits.
func (a Amount) MulDiv(num, den uint64) Amount {
	if den == 0 {
		panic("amount: division by zero")
	}
	var z Amount
	z.v.Mul(&a.v, uint256.NewInt(num))
	z.v.Div(&z.v, uint256.NewInt(den))
	return z
}

// Bytes returns the 16-byte big-endian encoding
func (a Amount) Bytes() []byte {
	b32 := a.v.Bytes32()
	out := make([]byte, AmountBytes)
	copy(out, b32[32-AmountBytes:])
	return out
}

// BigInt converts to math/big
func (a Amount) BigInt() *big.Int {
	return a.v.ToBig()
}

// Uint64 returns the value and whether it fits
func (a Amount) Uint64() (uint64, bool) {
	return a.v.Uint64(), a.v.IsUint64()
}

func (a Amount) String() string {
	return a.v.Dec()
}

// MarshalJSON encodes as a quoted decimal string, the usual form for 128-bit amounts
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a quoted decimal string or a bare number
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		var err error
		s, err = strconv.Unquote(s)
		if err != nil {
			return errors.Wrapf(ErrAmount, "unquote %s", data)
		}
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
