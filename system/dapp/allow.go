// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/pkg/errors"
	"github.com/zemyblue/finschia-lottery/types"
)

// AllowIsSame 执行器名字与驱动名字相同
func (d *DriverBase) AllowIsSame(execer []byte) bool {
	return d.child.GetDriverName() == string(execer)
}

// Allow 默认只允许发给自己的交易
func (d *DriverBase) Allow(tx *types.Transaction, index int) error {
	if d.AllowIsSame(tx.Execer) {
		return nil
	}
	return errors.Wrapf(types.ErrNotAllow, "execer %s", string(tx.Execer))
}
