// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin 插件 dapp 的注册入口
package plugin

import (
	_ "github.com/zemyblue/finschia-lottery/plugin/dapp/lottery" //register lottery
)
