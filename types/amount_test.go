// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxU128 = "340282366920938463463374607431768211455"

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("10000")
	require.NoError(t, err)
	assert.Equal(t, "10000", a.String())

	a, err = ParseAmount(maxU128)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(MaxAmount()))

	_, err = ParseAmount("340282366920938463463374607431768211456")
	assert.True(t, errors.Is(err, ErrOverflow))

	_, err = ParseAmount("-1")
	assert.True(t, errors.Is(err, ErrAmount))
	_, err = ParseAmount("abc")
	assert.True(t, errors.Is(err, ErrAmount))
}

func TestAmountCheckedArithmetic(t *testing.T) {
	max := MaxAmount()
	one := NewAmount(1)

	_, err := max.Add(one)
	assert.True(t, errors.Is(err, ErrOverflow))

	sum, err := NewAmount(1000).Add(NewAmount(24))
	require.NoError(t, err)
	assert.Equal(t, "1024", sum.String())

	_, err = one.Sub(NewAmount(2))
	assert.True(t, errors.Is(err, ErrUnderflow))

	diff, err := NewAmount(10).Sub(NewAmount(10))
	require.NoError(t, err)
	assert.True(t, diff.IsZero())

	_, err = max.Mul(NewAmount(2))
	assert.True(t, errors.Is(err, ErrOverflow))

	half := MustParseAmount("18446744073709551616") // 2^64
	_, err = half.Mul(half)
	assert.True(t, errors.Is(err, ErrOverflow))

	prod, err := NewAmount(1000).Mul(NewAmount(10))
	require.NoError(t, err)
	assert.Equal(t, "10000", prod.String())
}

func TestAmountMulDiv(t *testing.T) {
	assert.Equal(t, "2400", NewAmount(4000).MulDiv(60, 100).String())
	assert.Equal(t, "0", NewAmount(1).MulDiv(60, 100).String())
	assert.Equal(t, "3", NewAmount(7).MulDiv(50, 100).String())
	// no intermediate overflow at the top of the range
	assert.Equal(t, 0, MaxAmount().MulDiv(100, 100).Cmp(MaxAmount()))
}

func TestAmountBytes(t *testing.T) {
	a := MustParseAmount(maxU128)
	b := a.Bytes()
	assert.Len(t, b, AmountBytes)
	back, err := AmountFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(back))

	_, err = AmountFromBytes(make([]byte, 17))
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestAmountJSON(t *testing.T) {
	data, err := json.Marshal(NewAmount(1000))
	require.NoError(t, err)
	assert.Equal(t, `"1000"`, string(data))

	var coin Coin
	require.NoError(t, json.Unmarshal([]byte(`{"denom":"cony","amount":"1000"}`), &coin))
	assert.Equal(t, "1000cony", coin.String())
	require.NoError(t, json.Unmarshal([]byte(`{"denom":"cony","amount":25}`), &coin))
	assert.Equal(t, "25cony", coin.String())
	assert.Error(t, json.Unmarshal([]byte(`{"amount":"x"}`), &coin))
}
