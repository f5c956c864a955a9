// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"time"

	"github.com/33cn/lottery/metrics"
	"github.com/33cn/lottery/types"
)

//指标名称
const (
	MetricTxOK   = "execs.tx.ok"
	MetricTxFail = "execs.tx.fail"
	MetricTxTime = "execs.tx.time"
)

//MetricAction 每个执行器每种 action 执行成功的次数
func MetricAction(execer, action string) string {
	return "execs." + execer + "." + action
}

func countTx(tx *types.Transaction, start time.Time, err error) {
	metrics.UpdateTimerSince(MetricTxTime, start)
	if err != nil {
		metrics.IncCounter(MetricTxFail, 1)
		return
	}
	metrics.IncCounter(MetricTxOK, 1)
	metrics.IncCounter(MetricAction(string(tx.Execer), tx.ActionName()), 1)
}
