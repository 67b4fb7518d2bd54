// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system 系统级 dapp 的注册入口
package system

import (
	_ "github.com/zemyblue/finschia-lottery/system/dapp/coins" //register coins
)
