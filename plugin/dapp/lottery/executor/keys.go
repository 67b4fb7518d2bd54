// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
)

const (
	infoKey    = "mavl-lottery-info"
	tokenKey   = "mavl-lottery-token"
	currentKey = "mavl-lottery-current"

	balancePrefix = "mavl-lottery-balance-"
	roundPrefix   = "mavl-lottery-round-"
	investPrefix  = "mavl-lottery-invest-"
)

func calcInfoKey() []byte {
	return []byte(infoKey)
}

func calcTokenKey() []byte {
	return []byte(tokenKey)
}

func calcCurrentKey() []byte {
	return []byte(currentKey)
}

func calcBalanceKey(holder string) []byte {
	return []byte(balancePrefix + holder)
}

//轮次补齐 20 位，保证按数字顺序排列
func calcRoundKey(round uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", roundPrefix, round))
}

func calcInvestPrefix(round uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d-", investPrefix, round))
}

func calcInvestKey(round uint64, investor string) []byte {
	return append(calcInvestPrefix(round), []byte(investor)...)
}
