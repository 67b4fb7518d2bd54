// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"github.com/zemyblue/finschia-lottery/types"
)

// OneCoin 交易必须附带且只附带一种资产，并且是 denom
func OneCoin(funds []*types.Coin, denom string) (types.Amount, error) {
	switch len(funds) {
	case 0:
		return types.Amount{}, ErrNoFunds
	case 1:
	default:
		return types.Amount{}, errors.Wrapf(ErrMultipleDenoms, "%d coins", len(funds))
	}
	coin := funds[0]
	if coin.Amount.IsZero() {
		return types.Amount{}, ErrNoFunds
	}
	if coin.Denom != denom {
		return types.Amount{}, errors.Wrapf(ErrMissingDenom, "want %s got %s", denom, coin.Denom)
	}
	return coin.Amount, nil
}
