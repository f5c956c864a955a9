// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"sync/atomic"
	"time"
)

var deltaTime int64

//SetTimeDelta 本地时间的修正值(纳秒), 超过 60s 不做修正
func SetTimeDelta(dt int64) {
	if dt > 60*int64(time.Second) || dt < -60*int64(time.Second) {
		dt = 0
	}
	atomic.StoreInt64(&deltaTime, dt)
}

//Now 修正后的当前时间, 执行器用它作为交易的时间
func Now() time.Time {
	dt := time.Duration(atomic.LoadInt64(&deltaTime))
	return time.Now().Add(dt)
}
