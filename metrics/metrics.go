// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器的指标, 基于 go-metrics, 定时输出到日志
package metrics

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/33cn/lottery/types"
	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	mlog = log.New("module", "lottery metrics")

	//Registry 所有指标都注册在这里
	Registry = go_metrics.NewRegistry()

	enabled int32

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
)

type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	mlog.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

//StartMetrics 根据配置文件相关参数启动
func StartMetrics(cfg *types.Exec) {
	if cfg == nil || !cfg.EnableMetrics {
		atomic.StoreInt32(&enabled, 0)
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	atomic.StoreInt32(&enabled, 1)
	if cfg.MetricsInterval <= 0 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if stop != nil {
		return
	}
	interval := time.Duration(cfg.MetricsInterval) * time.Second
	mlog.Info("StartMetrics emit to log", "interval", interval)
	stop = make(chan struct{})
	done = make(chan struct{})
	go report(interval, stop, done)
}

func report(interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			go_metrics.WriteOnce(Registry, logWriter{})
		case <-stop:
			return
		}
	}
}

//StopMetrics 停止定时输出, 等待输出的 goroutine 退出
func StopMetrics() {
	mu.Lock()
	defer mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
	stop, done = nil, nil
	mlog.Info("StopMetrics")
}

//Reporting 是否正在定时输出
func Reporting() bool {
	mu.Lock()
	defer mu.Unlock()
	return stop != nil
}

//Enabled 是否开启
func Enabled() bool {
	return atomic.LoadInt32(&enabled) == 1
}

//IncCounter 计数
func IncCounter(name string, n int64) {
	if !Enabled() {
		return
	}
	go_metrics.GetOrRegisterCounter(name, Registry).Inc(n)
}

//UpdateTimerSince 记录从 start 到现在的耗时
func UpdateTimerSince(name string, start time.Time) {
	if !Enabled() {
		return
	}
	go_metrics.GetOrRegisterTimer(name, Registry).UpdateSince(start)
}

//Count 计数器当前的值, 不存在时返回 0
func Count(name string) int64 {
	if c, ok := Registry.Get(name).(go_metrics.Counter); ok {
		return c.Count()
	}
	return 0
}

//TimerCount 计时器记录的次数
func TimerCount(name string) int64 {
	if t, ok := Registry.Get(name).(go_metrics.Timer); ok {
		return t.Count()
	}
	return 0
}
