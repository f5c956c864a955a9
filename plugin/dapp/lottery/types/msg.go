// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/lottery/types"
)

//Round 一期彩票
type Round struct {
	Authority    string   `json:"authority,omitempty"`
	Id           uint64   `json:"id,omitempty"`
	Holders      []string `json:"holders,omitempty"`
	Sold         uint32   `json:"sold,omitempty"`
	Price        int64    `json:"price,omitempty"`
	Status       int32    `json:"status,omitempty"`
	Numbers      []int32  `json:"numbers,omitempty"`
	Address      string   `json:"address,omitempty"`
	CreateHeight int64    `json:"createHeight,omitempty"`
	DrawHeight   int64    `json:"drawHeight,omitempty"`
	Reserve      int64    `json:"reserve,omitempty"`
	MaxTickets   uint32   `json:"maxTickets,omitempty"`
}

//Marshal marshal
func (m *Round) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.String(1, m.Authority)
	e.Uint64(2, m.Id)
	e.Strings(3, m.Holders)
	e.Uint32(4, m.Sold)
	e.Int64(5, m.Price)
	e.Int32(6, m.Status)
	e.Int32s(7, m.Numbers)
	e.String(8, m.Address)
	e.Int64(9, m.CreateHeight)
	e.Int64(10, m.DrawHeight)
	e.Int64(11, m.Reserve)
	e.Uint32(12, m.MaxTickets)
	return e.Result()
}

//Unmarshal unmarshal
func (m *Round) Unmarshal(data []byte) error {
	*m = Round{}
	return types.WalkFields(data, func(f *types.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.Authority = f.String()
		case 2:
			m.Id = f.Uint64()
		case 3:
			m.Holders = append(m.Holders, f.String())
		case 4:
			m.Sold = f.Uint32()
		case 5:
			m.Price = f.Int64()
		case 6:
			m.Status = f.Int32()
		case 7:
			m.Numbers, err = f.Int32s(m.Numbers)
		case 8:
			m.Address = f.String()
		case 9:
			m.CreateHeight = f.Int64()
		case 10:
			m.DrawHeight = f.Int64()
		case 11:
			m.Reserve = f.Int64()
		case 12:
			m.MaxTickets = f.Uint32()
		}
		return err
	})
}

//Ticket 彩票, 每个地址在一期彩票中只有一张
type Ticket struct {
	Numbers []int32 `json:"numbers,omitempty"`
	Round   string  `json:"round,omitempty"`
	Owner   string  `json:"owner,omitempty"`
	Address string  `json:"address,omitempty"`
	Id      uint64  `json:"id,omitempty"`
}

//Marshal marshal
func (m *Ticket) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Int32s(1, m.Numbers)
	e.String(2, m.Round)
	e.String(3, m.Owner)
	e.String(4, m.Address)
	e.Uint64(5, m.Id)
	return e.Result()
}

//Unmarshal unmarshal
func (m *Ticket) Unmarshal(data []byte) error {
	*m = Ticket{}
	return types.WalkFields(data, func(f *types.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.Numbers, err = f.Int32s(m.Numbers)
		case 2:
			m.Round = f.String()
		case 3:
			m.Owner = f.String()
		case 4:
			m.Address = f.String()
		case 5:
			m.Id = f.Uint64()
		}
		return err
	})
}

//LotteryAction lottery 执行器的 action
type LotteryAction struct {
	Value isLotteryActionValue `json:"value,omitempty"`
	Ty    int32                `json:"ty,omitempty"`
}

type isLotteryActionValue interface {
	isLotteryActionValue()
}

//LotteryAction_Init init
type LotteryAction_Init struct {
	Init *LotteryInit
}

//LotteryAction_Purchase purchase
type LotteryAction_Purchase struct {
	Purchase *LotteryPurchase
}

//LotteryAction_Draw draw
type LotteryAction_Draw struct {
	Draw *LotteryDraw
}

//LotteryAction_Claim claim
type LotteryAction_Claim struct {
	Claim *LotteryClaim
}

func (*LotteryAction_Init) isLotteryActionValue()     {}
func (*LotteryAction_Purchase) isLotteryActionValue() {}
func (*LotteryAction_Draw) isLotteryActionValue()     {}
func (*LotteryAction_Claim) isLotteryActionValue()    {}

//GetValue get value
func (m *LotteryAction) GetValue() isLotteryActionValue {
	if m != nil {
		return m.Value
	}
	return nil
}

//GetInit get init
func (m *LotteryAction) GetInit() *LotteryInit {
	if x, ok := m.GetValue().(*LotteryAction_Init); ok {
		return x.Init
	}
	return nil
}

//GetPurchase get purchase
func (m *LotteryAction) GetPurchase() *LotteryPurchase {
	if x, ok := m.GetValue().(*LotteryAction_Purchase); ok {
		return x.Purchase
	}
	return nil
}

//GetDraw get draw
func (m *LotteryAction) GetDraw() *LotteryDraw {
	if x, ok := m.GetValue().(*LotteryAction_Draw); ok {
		return x.Draw
	}
	return nil
}

//GetClaim get claim
func (m *LotteryAction) GetClaim() *LotteryClaim {
	if x, ok := m.GetValue().(*LotteryAction_Claim); ok {
		return x.Claim
	}
	return nil
}

//GetTy get ty
func (m *LotteryAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//OneofWrappers oneof 分支
func (*LotteryAction) OneofWrappers() []interface{} {
	return []interface{}{
		(*LotteryAction_Init)(nil),
		(*LotteryAction_Purchase)(nil),
		(*LotteryAction_Draw)(nil),
		(*LotteryAction_Claim)(nil),
	}
}

//Marshal marshal
func (m *LotteryAction) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	switch x := m.Value.(type) {
	case *LotteryAction_Init:
		e.Oneof(1, x.Init)
	case *LotteryAction_Purchase:
		e.Oneof(2, x.Purchase)
	case *LotteryAction_Draw:
		e.Oneof(3, x.Draw)
	case *LotteryAction_Claim:
		e.Oneof(4, x.Claim)
	}
	e.Int32(10, m.Ty)
	return e.Result()
}

//Unmarshal unmarshal
func (m *LotteryAction) Unmarshal(data []byte) error {
	*m = LotteryAction{}
	return types.WalkFields(data, func(f *types.Field) error {
		switch f.Num {
		case 1:
			v := &LotteryInit{}
			if err := f.Message(v); err != nil {
				return err
			}
			m.Value = &LotteryAction_Init{Init: v}
		case 2:
			v := &LotteryPurchase{}
			if err := f.Message(v); err != nil {
				return err
			}
			m.Value = &LotteryAction_Purchase{Purchase: v}
		case 3:
			v := &LotteryDraw{}
			if err := f.Message(v); err != nil {
				return err
			}
			m.Value = &LotteryAction_Draw{Draw: v}
		case 4:
			v := &LotteryClaim{}
			if err := f.Message(v); err != nil {
				return err
			}
			m.Value = &LotteryAction_Claim{Claim: v}
		case 10:
			m.Ty = f.Int32()
		}
		return nil
	})
}

//LotteryInit 创建一期彩票
type LotteryInit struct {
	Id uint64 `json:"id,omitempty"`
}

//Marshal marshal
func (m *LotteryInit) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	return e.Result()
}

//Unmarshal unmarshal
func (m *LotteryInit) Unmarshal(data []byte) error {
	*m = LotteryInit{}
	return types.WalkFields(data, func(f *types.Field) error {
		if f.Num == 1 {
			m.Id = f.Uint64()
		}
		return nil
	})
}

//LotteryPurchase 购买彩票
type LotteryPurchase struct {
	Id      uint64  `json:"id,omitempty"`
	Numbers []int32 `json:"numbers,omitempty"`
}

//Marshal marshal
func (m *LotteryPurchase) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	e.Int32s(2, m.Numbers)
	return e.Result()
}

//Unmarshal unmarshal
func (m *LotteryPurchase) Unmarshal(data []byte) error {
	*m = LotteryPurchase{}
	return types.WalkFields(data, func(f *types.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.Id = f.Uint64()
		case 2:
			m.Numbers, err = f.Int32s(m.Numbers)
		}
		return err
	})
}

//LotteryDraw 开奖
type LotteryDraw struct {
	Id uint64 `json:"id,omitempty"`
}

//Marshal marshal
func (m *LotteryDraw) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	return e.Result()
}

//Unmarshal unmarshal
func (m *LotteryDraw) Unmarshal(data []byte) error {
	*m = LotteryDraw{}
	return types.WalkFields(data, func(f *types.Field) error {
		if f.Num == 1 {
			m.Id = f.Uint64()
		}
		return nil
	})
}

//LotteryClaim 领奖
type LotteryClaim struct {
	Id uint64 `json:"id,omitempty"`
}

//Marshal marshal
func (m *LotteryClaim) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	return e.Result()
}

//Unmarshal unmarshal
func (m *LotteryClaim) Unmarshal(data []byte) error {
	*m = LotteryClaim{}
	return types.WalkFields(data, func(f *types.Field) error {
		if f.Num == 1 {
			m.Id = f.Uint64()
		}
		return nil
	})
}

//ReceiptLottery lottery 交易的日志
type ReceiptLottery struct {
	Id         uint64  `json:"id,omitempty"`
	Round      string  `json:"round,omitempty"`
	Status     int32   `json:"status,omitempty"`
	PrevStatus int32   `json:"prevStatus,omitempty"`
	Addr       string  `json:"addr,omitempty"`
	Ticket     string  `json:"ticket,omitempty"`
	Numbers    []int32 `json:"numbers,omitempty"`
	Amount     int64   `json:"amount,omitempty"`
	Sold       uint32  `json:"sold,omitempty"`
	Height     int64   `json:"height,omitempty"`
	Time       int64   `json:"time,omitempty"`
}

//Marshal marshal
func (m *ReceiptLottery) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	e.Uint64(1, m.Id)
	e.String(2, m.Round)
	e.Int32(3, m.Status)
	e.Int32(4, m.PrevStatus)
	e.String(5, m.Addr)
	e.String(6, m.Ticket)
	e.Int32s(7, m.Numbers)
	e.Int64(8, m.Amount)
	e.Uint32(9, m.Sold)
	e.Int64(10, m.Height)
	e.Int64(11, m.Time)
	return e.Result()
}

//Unmarshal unmarshal
func (m *ReceiptLottery) Unmarshal(data []byte) error {
	*m = ReceiptLottery{}
	return types.WalkFields(data, func(f *types.Field) error {
		var err error
		switch f.Num {
		case 1:
			m.Id = f.Uint64()
		case 2:
			m.Round = f.String()
		case 3:
			m.Status = f.Int32()
		case 4:
			m.PrevStatus = f.Int32()
		case 5:
			m.Addr = f.String()
		case 6:
			m.Ticket = f.String()
		case 7:
			m.Numbers, err = f.Int32s(m.Numbers)
		case 8:
			m.Amount = f.Int64()
		case 9:
			m.Sold = f.Uint32()
		case 10:
			m.Height = f.Int64()
		case 11:
			m.Time = f.Int64()
		}
		return err
	})
}
