// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import "fmt"

//状态数据库
func calcRoundKey(addr string) []byte {
	return []byte("mavl-lottery-round-" + addr)
}

func calcTicketKey(addr string) []byte {
	return []byte("mavl-lottery-ticket-" + addr)
}

//本地数据库, id 补齐到 20 位, 保证按 id 排序
func calcLotteryStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("LODB-lottery-status:%d:", status))
}

func calcLotteryStatusKey(status int32, id uint64) []byte {
	return []byte(fmt.Sprintf("LODB-lottery-status:%d:%020d", status, id))
}

func calcLotteryBuyPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-lottery-buy:%s:", addr))
}

func calcLotteryBuyKey(addr string, id uint64) []byte {
	return []byte(fmt.Sprintf("LODB-lottery-buy:%s:%020d", addr, id))
}

func calcLotteryDrawKey(id uint64) []byte {
	return []byte(fmt.Sprintf("LODB-lottery-draw:%020d", id))
}

func calcLotteryClaimKey(id uint64) []byte {
	return []byte(fmt.Sprintf("LODB-lottery-claim:%020d", id))
}
