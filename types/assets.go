// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//AssetsTransfer 转账
type AssetsTransfer struct {
	Cointoken string `json:"cointoken,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
	Note      []byte `json:"note,omitempty"`
	To        string `json:"to,omitempty"`
}

//Marshal marshal
func (a *AssetsTransfer) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.String(1, a.Cointoken)
	e.Int64(2, a.Amount)
	e.Bytes(3, a.Note)
	e.String(4, a.To)
	return e.Result()
}

//Unmarshal unmarshal
func (a *AssetsTransfer) Unmarshal(data []byte) error {
	*a = AssetsTransfer{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			a.Cointoken = f.String()
		case 2:
			a.Amount = f.Int64()
		case 3:
			a.Note = f.Bytes()
		case 4:
			a.To = f.String()
		}
		return nil
	})
}

//AssetsWithdraw 从执行器取回
type AssetsWithdraw struct {
	Cointoken string `json:"cointoken,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
	Note      []byte `json:"note,omitempty"`
	ExecName  string `json:"execName,omitempty"`
	To        string `json:"to,omitempty"`
}

//Marshal marshal
func (a *AssetsWithdraw) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.String(1, a.Cointoken)
	e.Int64(2, a.Amount)
	e.Bytes(3, a.Note)
	e.String(4, a.ExecName)
	e.String(5, a.To)
	return e.Result()
}

//Unmarshal unmarshal
func (a *AssetsWithdraw) Unmarshal(data []byte) error {
	*a = AssetsWithdraw{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			a.Cointoken = f.String()
		case 2:
			a.Amount = f.Int64()
		case 3:
			a.Note = f.Bytes()
		case 4:
			a.ExecName = f.String()
		case 5:
			a.To = f.String()
		}
		return nil
	})
}

//AssetsTransferToExec 转入执行器
type AssetsTransferToExec struct {
	Cointoken string `json:"cointoken,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
	Note      []byte `json:"note,omitempty"`
	ExecName  string `json:"execName,omitempty"`
	To        string `json:"to,omitempty"`
}

//Marshal marshal
func (a *AssetsTransferToExec) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.String(1, a.Cointoken)
	e.Int64(2, a.Amount)
	e.Bytes(3, a.Note)
	e.String(4, a.ExecName)
	e.String(5, a.To)
	return e.Result()
}

//Unmarshal unmarshal
func (a *AssetsTransferToExec) Unmarshal(data []byte) error {
	*a = AssetsTransferToExec{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			a.Cointoken = f.String()
		case 2:
			a.Amount = f.Int64()
		case 3:
			a.Note = f.Bytes()
		case 4:
			a.ExecName = f.String()
		case 5:
			a.To = f.String()
		}
		return nil
	})
}

//AssetsGenesis 创世发币
type AssetsGenesis struct {
	Amount        int64  `json:"amount,omitempty"`
	ReturnAddress string `json:"returnAddress,omitempty"`
}

//Marshal marshal
func (a *AssetsGenesis) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Int64(2, a.Amount)
	e.String(3, a.ReturnAddress)
	return e.Result()
}

//Unmarshal unmarshal
func (a *AssetsGenesis) Unmarshal(data []byte) error {
	*a = AssetsGenesis{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 2:
			a.Amount = f.Int64()
		case 3:
			a.ReturnAddress = f.String()
		}
		return nil
	})
}
