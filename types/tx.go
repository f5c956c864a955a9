// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/lottery/common"
	"github.com/33cn/lottery/common/address"
)

//Transaction 交易, Sender 是已经通过认证的发起人地址
type Transaction struct {
	Execer  []byte `json:"execer,omitempty"`
	Payload []byte `json:"payload,omitempty"`
	Fee     int64  `json:"fee,omitempty"`
	Nonce   int64  `json:"nonce,omitempty"`
	To      string `json:"to,omitempty"`
	Sender  string `json:"sender,omitempty"`
}

//Marshal marshal
func (tx *Transaction) Marshal() ([]byte, error) {
	e := NewEncoder()
	e.Bytes(1, tx.Execer)
	e.Bytes(2, tx.Payload)
	e.Int64(4, tx.Fee)
	e.Int64(6, tx.Nonce)
	e.String(7, tx.To)
	e.String(8, tx.Sender)
	return e.Result()
}

//Unmarshal unmarshal
func (tx *Transaction) Unmarshal(data []byte) error {
	*tx = Transaction{}
	return WalkFields(data, func(f *Field) error {
		switch f.Num {
		case 1:
			tx.Execer = f.Bytes()
		case 2:
			tx.Payload = f.Bytes()
		case 4:
			tx.Fee = f.Int64()
		case 6:
			tx.Nonce = f.Int64()
		case 7:
			tx.To = f.String()
		case 8:
			tx.Sender = f.String()
		}
		return nil
	})
}

//Hash 交易哈希
func (tx *Transaction) Hash() []byte {
	return common.Sha256(Encode(tx))
}

//Size 交易大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

//From 交易发起人
func (tx *Transaction) From() string {
	return tx.Sender
}

//Check 检查交易的基本格式
func (tx *Transaction) Check() error {
	if len(tx.Execer) == 0 || len(tx.Execer) > address.MaxExecNameLength {
		return ErrExecNameNotAllow
	}
	if tx.Sender == "" {
		return ErrFromAddr
	}
	if err := address.CheckAddress(tx.Sender); err != nil {
		return ErrFromAddr
	}
	if tx.To != "" {
		if err := address.CheckAddress(tx.To); err != nil {
			return ErrInvalidAddress
		}
	}
	if tx.Fee < 0 {
		return ErrTxFeeTooLow
	}
	if int64(tx.Size()) > MaxTxSize {
		return ErrTxMsgSizeTooBig
	}
	return nil
}

//ActionName 交易的动作名称, 只用于显示
func (tx *Transaction) ActionName() string {
	exec := LoadExecutorType(string(tx.Execer))
	if exec == nil {
		return "unknown"
	}
	return exec.ActionName(tx)
}

//Amount 交易涉及的金额
func (tx *Transaction) Amount() (int64, error) {
	exec := LoadExecutorType(string(tx.Execer))
	if exec == nil {
		return 0, nil
	}
	return exec.Amount(tx)
}

//JSON 交易的 json 格式, payload 解码后显示
func (tx *Transaction) JSON() string {
	type txdata struct {
		Execer  string      `json:"execer"`
		Payload interface{} `json:"payload"`
		Fee     int64       `json:"fee"`
		Nonce   int64       `json:"nonce"`
		To      string      `json:"to"`
		From    string      `json:"from"`
		Hash    string      `json:"hash"`
	}
	var payload interface{} = common.ToHex(tx.Payload)
	if exec := LoadExecutorType(string(tx.Execer)); exec != nil {
		if pl, err := exec.DecodePayload(tx); err == nil {
			payload = pl
		}
	}
	data, err := json.Marshal(&txdata{
		Execer:  string(tx.Execer),
		Payload: payload,
		Fee:     tx.Fee,
		Nonce:   tx.Nonce,
		To:      tx.To,
		From:    tx.From(),
		Hash:    common.ToHex(tx.Hash()),
	})
	if err != nil {
		return err.Error()
	}
	return string(data)
}
