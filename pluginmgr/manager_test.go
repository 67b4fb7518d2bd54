// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestPluginBase(t *testing.T) {
	var gotName string
	var gotSub []byte
	p := &PluginBase{
		Name:     "test.echo",
		ExecName: "echo",
		Exec: func(name string, sub []byte) {
			gotName = name
			gotSub = sub
		},
		Cmd: func() *cobra.Command { return &cobra.Command{Use: "echo"} },
	}
	Register(p)
	assert.Panics(t, func() { Register(p) })
	assert.True(t, HasExec("echo"))
	assert.False(t, HasExec("nosuch"))

	InitExec(map[string][]byte{"echo": []byte(`{"k":1}`)})
	assert.Equal(t, "echo", gotName)
	assert.Equal(t, `{"k":1}`, string(gotSub))

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	assert.Len(t, root.Commands(), 1)
	assert.Equal(t, "echo", root.Commands()[0].Use)
}
