// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/lottery/types"
)

//CoinsAction coins 执行器的 action
type CoinsAction struct {
	Value isCoinsActionValue `json:"value,omitempty"`
	Ty    int32              `json:"ty,omitempty"`
}

type isCoinsActionValue interface {
	isCoinsActionValue()
}

//CoinsAction_Transfer transfer
type CoinsAction_Transfer struct {
	Transfer *types.AssetsTransfer
}

//CoinsAction_Withdraw withdraw
type CoinsAction_Withdraw struct {
	Withdraw *types.AssetsWithdraw
}

//CoinsAction_Genesis genesis
type CoinsAction_Genesis struct {
	Genesis *types.AssetsGenesis
}

//CoinsAction_TransferToExec transfer to exec
type CoinsAction_TransferToExec struct {
	TransferToExec *types.AssetsTransferToExec
}

func (*CoinsAction_Transfer) isCoinsActionValue()       {}
func (*CoinsAction_Withdraw) isCoinsActionValue()       {}
func (*CoinsAction_Genesis) isCoinsActionValue()        {}
func (*CoinsAction_TransferToExec) isCoinsActionValue() {}

//GetValue get value
func (m *CoinsAction) GetValue() isCoinsActionValue {
	if m != nil {
		return m.Value
	}
	return nil
}

//GetTransfer get transfer
func (m *CoinsAction) GetTransfer() *types.AssetsTransfer {
	if x, ok := m.GetValue().(*CoinsAction_Transfer); ok {
		return x.Transfer
	}
	return nil
}

//GetWithdraw get withdraw
func (m *CoinsAction) GetWithdraw() *types.AssetsWithdraw {
	if x, ok := m.GetValue().(*CoinsAction_Withdraw); ok {
		return x.Withdraw
	}
	return nil
}

//GetGenesis get genesis
func (m *CoinsAction) GetGenesis() *types.AssetsGenesis {
	if x, ok := m.GetValue().(*CoinsAction_Genesis); ok {
		return x.Genesis
	}
	return nil
}

//GetTransferToExec get transfer to exec
func (m *CoinsAction) GetTransferToExec() *types.AssetsTransferToExec {
	if x, ok := m.GetValue().(*CoinsAction_TransferToExec); ok {
		return x.TransferToExec
	}
	return nil
}

//GetTy get ty
func (m *CoinsAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//OneofWrappers oneof 分支
func (*CoinsAction) OneofWrappers() []interface{} {
	return []interface{}{
		(*CoinsAction_Transfer)(nil),
		(*CoinsAction_Withdraw)(nil),
		(*CoinsAction_Genesis)(nil),
		(*CoinsAction_TransferToExec)(nil),
	}
}

//Marshal marshal
func (m *CoinsAction) Marshal() ([]byte, error) {
	e := types.NewEncoder()
	switch x := m.Value.(type) {
	case *CoinsAction_Transfer:
		e.Oneof(1, x.Transfer)
	case *CoinsAction_Genesis:
		e.Oneof(2, x.Genesis)
	case *CoinsAction_Withdraw:
		e.Oneof(4, x.Withdraw)
	case *CoinsAction_TransferToExec:
		e.Oneof(5, x.TransferToExec)
	}
	e.Int32(3, m.Ty)
	return e.Result()
}

//Unmarshal unmarshal
func (m *CoinsAction) Unmarshal(data []byte) error {
	*m = CoinsAction{}
	return types.WalkFields(data, func(f *types.Field) error {
		switch f.Num {
		case 1:
			v := &types.AssetsTransfer{}
			if err := f.Message(v); err != nil {
				return err
			}
			m.Value = &CoinsAction_Transfer{Transfer: v}
		case 2:
			v := &types.AssetsGenesis{}
			if err := f.Message(v); err != nil {
				return err
			}
			m.Value = &CoinsAction_Genesis{Genesis: v}
		case 3:
			m.Ty = f.Int32()
		case 4:
			v := &types.AssetsWithdraw{}
			if err := f.Message(v); err != nil {
				return err
			}
			m.Value = &CoinsAction_Withdraw{Withdraw: v}
		case 5:
			v := &types.AssetsTransferToExec{}
			if err := f.Message(v); err != nil {
				return err
			}
			m.Value = &CoinsAction_TransferToExec{TransferToExec: v}
		}
		return nil
	})
}
