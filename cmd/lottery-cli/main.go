// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	_ "github.com/zemyblue/finschia-lottery/plugin"
	_ "github.com/zemyblue/finschia-lottery/system"
	"github.com/zemyblue/finschia-lottery/util/cli"
)

func main() {
	cli.Run("lottery.toml")
}
