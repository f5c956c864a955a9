// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//Account 账户, 在执行器账户里 Addr 是用户地址
type Account struct {
	Currency int32  `json:"currency,omitempty"`
	Balance  int64  `json:"balance,omitempty"`
	Frozen   int64  `json:"frozen,omitempty"`
	Addr     string `json:"addr,omitempty"`
}

//GetBalance get balance
func (acc *Account) GetBalance() int64 {
	if acc != nil {
		return acc.Balance
	}
	return 0
}

//GetFrozen get frozen
func (acc *Account) GetFrozen() int64 {
	if acc != nil {
		return acc.Frozen
	}
	return 0
}

//Marshal marshal
func (acc *Account) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Int32(1, acc.Currency)
	e.Int64(2, acc.Balance)
	e.Int64(3, acc.Frozen)
	e.String(4, acc.Addr)
	return e.Result()
}

//Unmarshal unmarshal
func (acc *Account) Unmarshal(data []byte) error {
	*acc = Account{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			acc.Currency = f.Int32()
		case 2:
			acc.Balance = f.Int64()
		case 3:
			acc.Frozen = f.Int64()
		case 4:
			acc.Addr = f.String()
		}
		return nil
	})
}

//ReceiptAccountTransfer 账户余额变化日志
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev,omitempty"`
	Current *Account `json:"current,omitempty"`
}

//Marshal marshal
func (r *ReceiptAccountTransfer) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Message(1, r.Prev)
	e.Message(2, r.Current)
	return e.Result()
}

//Unmarshal unmarshal
func (r *ReceiptAccountTransfer) Unmarshal(data []byte) error {
	*r = ReceiptAccountTransfer{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			r.Prev = &Account{}
			return f.Message(r.Prev)
		case 2:
			r.Current = &Account{}
			return f.Message(r.Current)
		}
		return nil
	})
}

//ReceiptExecAccountTransfer 执行器账户余额变化日志
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `json:"execAddr,omitempty"`
	Prev     *Account `json:"prev,omitempty"`
	Current  *Account `json:"current,omitempty"`
}

//Marshal marshal
func (r *ReceiptExecAccountTransfer) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.String(1, r.ExecAddr)
	e.Message(2, r.Prev)
	e.Message(3, r.Current)
	return e.Result()
}

//Unmarshal unmarshal
func (r *ReceiptExecAccountTransfer) Unmarshal(data []byte) error {
	*r = ReceiptExecAccountTransfer{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			r.ExecAddr = f.String()
		case 2:
			r.Prev = &Account{}
			return f.Message(r.Prev)
		case 3:
			r.Current = &Account{}
			return f.Message(r.Current)
		}
		return nil
	})
}

//ReqBalance 查询余额, Execer 为空时查询 coins 账户
type ReqBalance struct {
	Addresses []string `json:"addresses,omitempty"`
	Execer    string   `json:"execer,omitempty"`
}

//Marshal marshal
func (r *ReqBalance) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Strings(1, r.Addresses)
	e.String(2, r.Execer)
	return e.Result()
}

//Unmarshal unmarshal
func (r *ReqBalance) Unmarshal(data []byte) error {
	*r = ReqBalance{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			r.Addresses = append(r.Addresses, f.String())
		case 2:
			r.Execer = f.String()
		}
		return nil
	})
}

//Accounts 账户列表
type Accounts struct {
	Acc []*Account `json:"acc,omitempty"`
}

//Marshal marshal
func (a *Accounts) Marshal() ([]byte, error) {
	e := NewEncoder()
	for _, acc := range a.Acc {
		e.Oneof(1, acc)
	}
	return e.Result()
}

//Unmarshal unmarshal
func (a *Accounts) Unmarshal(data []byte) error {
	*a = Accounts{}
	return WalkFields(data, func(f *Field) error {
		if f.Num == 1 {
			acc := &Account{}
			if err := f.Message(acc); err != nil {
				return err
			}
			a.Acc = append(a.Acc, acc)
		}
		return nil
	})
}
