// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/33cn/lottery/types"
)

//AllowIsSame 交易的执行器名称和驱动名称相同
func (d *DriverBase) AllowIsSame(execer []byte) bool {
	return d.child.GetDriverName() == string(execer)
}

//Allow 默认行为: 名字相同
func (d *DriverBase) Allow(tx *types.Transaction, index int) error {
	if d.AllowIsSame(tx.Execer) {
		return nil
	}
	return types.ErrNotAllow
}
