// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/zemyblue/finschia-lottery/common"
	ty "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery/types"
	"github.com/zemyblue/finschia-lottery/types"
)

// WinnerSelector 从按地址排序的投资人列表中选出两个中奖下标
//
// proof 记录在轮次的结算结果里，用于事后验证选择的输入
type WinnerSelector interface {
	Select(round uint64, investors []*ty.Investor) (first, second int, proof string, err error)
}

// FixedIndexSelector 固定下标对投资人数取模。结果完全可以预测，不是安全的随机数
type FixedIndexSelector struct {
	First  uint64
	Second uint64
}

// DefaultSelector 默认下标 7 和 8
func DefaultSelector() FixedIndexSelector {
	return FixedIndexSelector{First: ty.DefaultFirstIndex, Second: ty.DefaultSecondIndex}
}

// NewSelector 根据配置的下标创建选择器，为空时使用默认值
func NewSelector(indices []uint64) (WinnerSelector, error) {
	switch len(indices) {
	case 0:
		return DefaultSelector(), nil
	case 2:
		return FixedIndexSelector{First: indices[0], Second: indices[1]}, nil
	}
	return nil, errors.Wrapf(types.ErrInvalidParam, "selectIndices needs 2 values, got %d", len(indices))
}

// Select 两个下标可以相同，此时同一个投资人占两个名额
func (s FixedIndexSelector) Select(round uint64, investors []*ty.Investor) (int, int, string, error) {
	n := uint64(len(investors))
	if n == 0 {
		return 0, 0, "", ty.ErrNoInvestors
	}
	return int(s.First % n), int(s.Second % n), SnapshotDigest(round, investors), nil
}

// SnapshotDigest 轮次号以及全部投资记录的 sha3 摘要
func SnapshotDigest(round uint64, investors []*ty.Investor) string {
	var buf []byte
	buf = binary.BigEndian.AppendUint64(buf, round)
	for _, inv := range investors {
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(inv.Addr)))
		buf = append(buf, inv.Addr...)
		buf = append(buf, inv.Amount.Bytes()...)
	}
	return common.ToHex(common.Sha3Sum256(buf))
}
