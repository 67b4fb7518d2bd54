// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器的计数和计时
package metrics

import (
	"fmt"
	"sync"
	"time"

	go_metrics "github.com/rcrowley/go-metrics"
	lotterylog "github.com/zemyblue/finschia-lottery/common/log"
	"github.com/zemyblue/finschia-lottery/types"
)

var (
	log = lotterylog.New("module", "lottery metrics")

	mu      sync.Mutex
	enabled bool
)

// 日志输出的间隔
const logInterval = time.Minute

//StartMetrics 根据配置文件相关参数启动 metrics
func StartMetrics(cfg *types.Metrics) {
	mu.Lock()
	defer mu.Unlock()
	if cfg == nil || !cfg.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		enabled = false
		return
	}
	enabled = true

	switch cfg.DataEmitMode {
	case "":
	case "log":
		go go_metrics.Log(go_metrics.DefaultRegistry, logInterval, logger{})
	default:
		log.Error("startMetrics", "The dataEmitMode set is not supported now ", cfg.DataEmitMode)
	}
}

// Enabled 是否开启
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// ExecTimer <exec>.exec.<action>.time
func ExecTimer(exec, action string) go_metrics.Timer {
	if !Enabled() {
		return go_metrics.NilTimer{}
	}
	return go_metrics.GetOrRegisterTimer(fmt.Sprintf("%s.exec.%s.time", exec, action), go_metrics.DefaultRegistry)
}

// ExecCounter <exec>.exec.<action>.ok 或者 .err
func ExecCounter(exec, action string, ok bool) go_metrics.Counter {
	if !Enabled() {
		return go_metrics.NilCounter{}
	}
	result := "ok"
	if !ok {
		result = "err"
	}
	return go_metrics.GetOrRegisterCounter(fmt.Sprintf("%s.exec.%s.%s", exec, action, result), go_metrics.DefaultRegistry)
}

// Snapshot 当前所有指标的快照，命令行展示使用
func Snapshot() map[string]map[string]interface{} {
	return go_metrics.DefaultRegistry.GetAll()
}

// logger 把 go-metrics 的输出转到 log15
type logger struct{}

func (logger) Printf(format string, v ...interface{}) {
	log.Info(fmt.Sprintf(format, v...))
}
