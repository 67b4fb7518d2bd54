// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zemyblue/finschia-lottery/types"
)

func TestExecCounterDisabled(t *testing.T) {
	StartMetrics(&types.Metrics{EnableMetrics: false})
	assert.False(t, Enabled())
	c := ExecCounter("test", "nop", true)
	c.Inc(1)
	assert.Equal(t, int64(0), c.Count())
}

func TestExecCounterEnabled(t *testing.T) {
	StartMetrics(&types.Metrics{EnableMetrics: true})
	defer StartMetrics(nil)
	assert.True(t, Enabled())

	ExecCounter("test", "deposit", true).Inc(1)
	ExecCounter("test", "deposit", true).Inc(1)
	ExecCounter("test", "deposit", false).Inc(1)
	assert.Equal(t, int64(2), ExecCounter("test", "deposit", true).Count())
	assert.Equal(t, int64(1), ExecCounter("test", "deposit", false).Count())

	ExecTimer("test", "deposit").Update(time.Millisecond)
	assert.Equal(t, int64(1), ExecTimer("test", "deposit").Count())

	all := Snapshot()
	assert.Contains(t, all, "test.exec.deposit.ok")
}
