// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/lottery/account"
	drivers "github.com/33cn/lottery/system/dapp"
	"github.com/33cn/lottery/types"
)

var coinsAccount = account.NewCoinsAccount()

//isAllowKeyWrite 执行器只能修改自己的数据, 以及 coins 中属于这个执行器地址的账户
func isAllowKeyWrite(key []byte, tx *types.Transaction) bool {
	if bytes.HasPrefix(key, types.CalcStatePrefix(tx.Execer)) {
		return true
	}
	return bytes.HasPrefix(key, coinsAccount.ExecAccountKeyPrefix(drivers.ExecAddress(string(tx.Execer))))
}

//isAllowLocalKey 本地数据库的 key 必须是 LODB-execer- 开头
func isAllowLocalKey(execer []byte, key []byte) error {
	prefix := types.CalcLocalPrefix(execer)
	if len(key) <= len(prefix) || !bytes.HasPrefix(key, prefix) {
		elog.Error("isAllowLocalKey prefix not match", "key", string(key), "exec", string(execer))
		return types.ErrLocalPrefix
	}
	return nil
}
