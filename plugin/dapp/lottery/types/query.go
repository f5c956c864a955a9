// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/lottery/types"
)

//ReqLotteryRound 查询一期彩票
type ReqLotteryRound struct {
	Id uint64 `json:"id,omitempty"`
}

//Marshal marshal
func (m *ReqLotteryRound) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	return e.Result()
}

//Unmarshal unmarshal
func (m *ReqLotteryRound) Unmarshal(data []byte) error {
	*m = ReqLotteryRound{}
	return types.WalkFields(data, func(f *types.Field) error {
		if f.Num == 1 {
			m.Id = f.Uint64()
		}
		return nil
	})
}

//ReqLotteryTicket 查询某个地址在一期彩票中的彩票
type ReqLotteryTicket struct {
	Id   uint64 `json:"id,omitempty"`
	Addr string `json:"addr,omitempty"`
}

//Marshal marshal
func (m *ReqLotteryTicket) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	e.String(2, m.Addr)
	return e.Result()
}

//Unmarshal unmarshal
func (m *ReqLotteryTicket) Unmarshal(data []byte) error {
	*m = ReqLotteryTicket{}
	return types.WalkFields(data, func(f *types.Field) error {
		switch f.Num {
		case 1:
			m.Id = f.Uint64()
		case 2:
			m.Addr = f.String()
		}
		return nil
	})
}

//ReqLotteryList 按状态列出彩票, PrimaryId 为 0 时从头开始
type ReqLotteryList struct {
	Status    int32  `json:"status,omitempty"`
	Count     int32  `json:"count,omitempty"`
	Direction int32  `json:"direction,omitempty"`
	PrimaryId uint64 `json:"primaryId,omitempty"`
}

//Marshal marshal
func (m *ReqLotteryList) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Int32(1, m.Status)
	e.Int32(2, m.Count)
	e.Int32(3, m.Direction)
	e.Uint64(4, m.PrimaryId)
	return e.Result()
}

//Unmarshal unmarshal
func (m *ReqLotteryList) Unmarshal(data []byte) error {
	*m = ReqLotteryList{}
	return types.WalkFields(data, func(f *types.Field) error {
		switch f.Num {
		case 1:
			m.Status = f.Int32()
		case 2:
			m.Count = f.Int32()
		case 3:
			m.Direction = f.Int32()
		case 4:
			m.PrimaryId = f.Uint64()
		}
		return nil
	})
}

//ReqLotteryBuyHistory 查询某个地址的购买记录
type ReqLotteryBuyHistory struct {
	Addr      string `json:"addr,omitempty"`
	Count     int32  `json:"count,omitempty"`
	Direction int32  `json:"direction,omitempty"`
	PrimaryId uint64 `json:"primaryId,omitempty"`
}

//Marshal marshal
func (m *ReqLotteryBuyHistory) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.String(1, m.Addr)
	e.Int32(2, m.Count)
	e.Int32(3, m.Direction)
	e.Uint64(4, m.PrimaryId)
	return e.Result()
}

//Unmarshal unmarshal
func (m *ReqLotteryBuyHistory) Unmarshal(data []byte) error {
	*m = ReqLotteryBuyHistory{}
	return types.WalkFields(data, func(f *types.Field) error {
		switch f.Num {
		case 1:
			m.Addr = f.String()
		case 2:
			m.Count = f.Int32()
		case 3:
			m.Direction = f.Int32()
		case 4:
			m.PrimaryId = f.Uint64()
		}
		return nil
	})
}

//ReplyLotteryList 彩票列表
type ReplyLotteryList struct {
	Rounds []*Round `json:"rounds,omitempty"`
}

//Marshal marshal
func (m *ReplyLotteryList) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	for _, r := range m.Rounds {
		e.Message(1, r)
	}
	return e.Result()
}

//Unmarshal unmarshal
func (m *ReplyLotteryList) Unmarshal(data []byte) error {
	*m = ReplyLotteryList{}
	return types.WalkFields(data, func(f *types.Field) error {
		if f.Num == 1 {
			r := &Round{}
			if err := f.Message(r); err != nil {
				return err
			}
			m.Rounds = append(m.Rounds, r)
		}
		return nil
	})
}

//LotteryBuyRecord 一条购买记录, 保存在本地数据库
type LotteryBuyRecord struct {
	Id      uint64  `json:"id,omitempty"`
	Round   string  `json:"round,omitempty"`
	Ticket  string  `json:"ticket,omitempty"`
	Numbers []int32 `json:"numbers,omitempty"`
	Amount  int64   `json:"amount,omitempty"`
	Height  int64   `json:"height,omitempty"`
	Time    int64   `json:"time,omitempty"`
	TxHash  string  `json:"txHash,omitempty"`
}

//Marshal marshal
func (m *LotteryBuyRecord) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	e.String(2, m.Round)
	e.String(3, m.Ticket)
	e.Int32s(4, m.Numbers)
	e.Int64(5, m.Amount)
	e.Int64(6, m.Height)
	e.Int64(7, m.Time)
	e.String(8, m.TxHash)
	return e.Result()
}

//Unmarshal unmarshal
func (m *LotteryBuyRecord) Unmarshal(data []byte) error {
	*m = LotteryBuyRecord{}
	return types.WalkFields(data, func(f *types.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.Id = f.Uint64()
		case 2:
			m.Round = f.String()
		case 3:
			m.Ticket = f.String()
		case 4:
			m.Numbers, err = f.Int32s(m.Numbers)
		case 5:
			m.Amount = f.Int64()
		case 6:
			m.Height = f.Int64()
		case 7:
			m.Time = f.Int64()
		case 8:
			m.TxHash = f.String()
		}
		return err
	})
}

//LotteryBuyRecords 购买记录列表
type LotteryBuyRecords struct {
	Records []*LotteryBuyRecord `json:"records,omitempty"`
}

//Marshal marshal
func (m *LotteryBuyRecords) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	for _, r := range m.Records {
		e.Message(1, r)
	}
	return e.Result()
}

//Unmarshal unmarshal
func (m *LotteryBuyRecords) Unmarshal(data []byte) error {
	*m = LotteryBuyRecords{}
	return types.WalkFields(data, func(f *types.Field) error {
		if f.Num == 1 {
			r := &LotteryBuyRecord{}
			if err := f.Message(r); err != nil {
				return err
			}
			m.Records = append(m.Records, r)
		}
		return nil
	})
}

//LotteryDrawRecord 开奖记录
type LotteryDrawRecord struct {
	Id      uint64  `json:"id,omitempty"`
	Numbers []int32 `json:"numbers,omitempty"`
	Sold    uint32  `json:"sold,omitempty"`
	Height  int64   `json:"height,omitempty"`
	Time    int64   `json:"time,omitempty"`
	TxHash  string  `json:"txHash,omitempty"`
}

//Marshal marshal
func (m *LotteryDrawRecord) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	e.Int32s(2, m.Numbers)
	e.Uint32(3, m.Sold)
	e.Int64(4, m.Height)
	e.Int64(5, m.Time)
	e.String(6, m.TxHash)
	return e.Result()
}

//Unmarshal unmarshal
func (m *LotteryDrawRecord) Unmarshal(data []byte) error {
	*m = LotteryDrawRecord{}
	return types.WalkFields(data, func(f *types.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.Id = f.Uint64()
		case 2:
			m.Numbers, err = f.Int32s(m.Numbers)
		case 3:
			m.Sold = f.Uint32()
		case 4:
			m.Height = f.Int64()
		case 5:
			m.Time = f.Int64()
		case 6:
			m.TxHash = f.String()
		}
		return err
	})
}

//LotteryClaimRecord 领奖记录
type LotteryClaimRecord struct {
	Id     uint64 `json:"id,omitempty"`
	Addr   string `json:"addr,omitempty"`
	Amount int64  `json:"amount,omitempty"`
	Height int64  `json:"height,omitempty"`
	Time   int64  `json:"time,omitempty"`
	TxHash string `json:"txHash,omitempty"`
}

//Marshal marshal
func (m *LotteryClaimRecord) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	e.String(2, m.Addr)
	e.Int64(3, m.Amount)
	e.Int64(4, m.Height)
	e.Int64(5, m.Time)
	e.String(6, m.TxHash)
	return e.Result()
}

//Unmarshal unmarshal
func (m *LotteryClaimRecord) Unmarshal(data []byte) error {
	*m = LotteryClaimRecord{}
	return types.WalkFields(data, func(f *types.Field) error {
		switch f.Num {
		case 1:
			m.Id = f.Uint64()
		case 2:
			m.Addr = f.String()
		case 3:
			m.Amount = f.Int64()
		case 4:
			m.Height = f.Int64()
		case 5:
			m.Time = f.Int64()
		case 6:
			m.TxHash = f.String()
		}
		return nil
	})
}

//ReplyLotteryEscrow 奖池信息, Escrow = Balance - Reserve, 不小于 0
type ReplyLotteryEscrow struct {
	Id        uint64 `json:"id,omitempty"`
	Address   string `json:"address,omitempty"`
	Balance   int64  `json:"balance,omitempty"`
	Reserve   int64  `json:"reserve,omitempty"`
	Escrow    int64  `json:"escrow,omitempty"`
	EscrowStr string `json:"escrowStr,omitempty"`
}

//Marshal marshal
func (m *ReplyLotteryEscrow) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	e.String(2, m.Address)
	e.Int64(3, m.Balance)
	e.Int64(4, m.Reserve)
	e.Int64(5, m.Escrow)
	e.String(6, m.EscrowStr)
	return e.Result()
}

//Unmarshal unmarshal
func (m *ReplyLotteryEscrow) Unmarshal(data []byte) error {
	*m = ReplyLotteryEscrow{}
	return types.WalkFields(data, func(f *types.Field) error {
		switch f.Num {
		case 1:
			m.Id = f.Uint64()
		case 2:
			m.Address = f.String()
		case 3:
			m.Balance = f.Int64()
		case 4:
			m.Reserve = f.Int64()
		case 5:
			m.Escrow = f.Int64()
		case 6:
			m.EscrowStr = f.String()
		}
		return nil
	})
}
