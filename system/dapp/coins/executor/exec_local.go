// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/types"
)

func (c *Coins) updateReciver(addr string, amount int64, isadd bool, receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	if receipt.GetTy() != types.ExecOk {
		return &types.LocalDBSet{}, nil
	}
	kv, err := updateAddrReciver(c.GetLocalDB(), addr, amount, isadd)
	if err != nil {
		return nil, err
	}
	return &types.LocalDBSet{KV: []*types.KeyValue{kv}}, nil
}

// ExecLocal_Transfer  transfer of local exec
func (c *Coins) ExecLocal_Transfer(transfer *types.AssetsTransfer, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.updateReciver(tx.To, transfer.Amount, true, receipt)
}

// ExecLocal_TransferToExec  transfer of local exec to exec
func (c *Coins) ExecLocal_TransferToExec(transfer *types.AssetsTransferToExec, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.updateReciver(tx.To, transfer.Amount, true, receipt)
}

// ExecLocal_Withdraw  withdraw local exec
func (c *Coins) ExecLocal_Withdraw(withdraw *types.AssetsWithdraw, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.updateReciver(tx.From(), withdraw.Amount, true, receipt)
}

// ExecLocal_Genesis Genesis of local exec
func (c *Coins) ExecLocal_Genesis(gen *types.AssetsGenesis, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.updateReciver(tx.To, gen.Amount, true, receipt)
}
