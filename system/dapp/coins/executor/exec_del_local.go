// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/lottery/types"
)

// ExecDelLocal_Transfer  transfer of delete local exec
func (c *Coins) ExecDelLocal_Transfer(transfer *types.AssetsTransfer, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.updateReciver(tx.To, transfer.Amount, false, receipt)
}

// ExecDelLocal_TransferToExec  transfer to exec of delete local exec
func (c *Coins) ExecDelLocal_TransferToExec(transfer *types.AssetsTransferToExec, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.updateReciver(tx.To, transfer.Amount, false, receipt)
}

// ExecDelLocal_Withdraw  withdraw of delete local exec
func (c *Coins) ExecDelLocal_Withdraw(withdraw *types.AssetsWithdraw, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.updateReciver(tx.From(), withdraw.Amount, false, receipt)
}

// ExecDelLocal_Genesis Genesis of delete local exec
func (c *Coins) ExecDelLocal_Genesis(gen *types.AssetsGenesis, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.updateReciver(tx.To, gen.Amount, false, receipt)
}
