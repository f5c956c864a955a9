// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/types"
)

// Query_GetAddrReciver 地址累计收到的金额
func (c *Coins) Query_GetAddrReciver(in *types.ReqString) (types.Message, error) {
	return c.GetAddrReciver(in)
}

// Query_GetPrefixCount 本地数据库中指定前缀的数量
func (c *Coins) Query_GetPrefixCount(in *types.ReqKey) (types.Message, error) {
	return c.GetPrefixCount(in)
}

// Query_GetBalance 查询余额
func (c *Coins) Query_GetBalance(in *types.ReqBalance) (types.Message, error) {
	accounts, err := c.GetCoinsAccount().GetBalance(in)
	if err != nil {
		return nil, err
	}
	return &types.Accounts{Acc: accounts}, nil
}

// GetAddrReciver get addr reciver
func (c *Coins) GetAddrReciver(addr *types.ReqString) (types.Message, error) {
	reciver := types.Int64{}
	db := c.GetLocalDB()
	addrReciver, err := db.Get(calcAddrKey(addr.Data))
	if addrReciver == nil || err != nil {
		return &reciver, types.ErrEmpty
	}
	err = types.Decode(addrReciver, &reciver)
	if err != nil {
		return &reciver, err
	}
	return &reciver, nil
}
