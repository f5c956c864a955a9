// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/lottery/common/address"
	"github.com/33cn/lottery/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferToExecAndWithdraw(t *testing.T) {
	accCoin, _ := GenerAccDb(t)
	accCoin.GenerAccData()
	execaddr := accCoin.ExecAddress("lottery")

	receipt, err := accCoin.TransferToExec(addr1, execaddr, 10*1e8)
	require.NoError(t, err)
	require.Equal(t, 3, len(receipt.Logs))
	assert.Equal(t, int32(types.TyLogExecDeposit), receipt.Logs[2].Ty)
	assert.Equal(t, int64(990*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(10*1e8), accCoin.LoadAccount(execaddr).Balance)
	assert.Equal(t, int64(10*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)

	_, err = accCoin.TransferWithdraw(addr1, execaddr, 11*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	receipt, err = accCoin.TransferWithdraw(addr1, execaddr, 4*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecWithdraw), receipt.Logs[0].Ty)
	assert.Equal(t, int64(994*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(6*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)

	_, err = accCoin.TransferToExec(addr1, execaddr, 1000*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestExecTransfer(t *testing.T) {
	accCoin, _ := GenerAccDb(t)
	accCoin.GenerAccData()
	execaddr := address.ExecAddress("lottery")
	_, err := accCoin.TransferToExec(addr1, execaddr, 10*1e8)
	require.NoError(t, err)

	receipt, err := accCoin.ExecTransfer(addr1, addr2, execaddr, 3*1e8)
	require.NoError(t, err)
	require.Equal(t, 2, len(receipt.Logs))
	assert.Equal(t, int32(types.TyLogExecTransfer), receipt.Logs[0].Ty)
	var r types.ReceiptExecAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[1].Log, &r))
	assert.Equal(t, execaddr, r.ExecAddr)
	assert.Equal(t, addr2, r.Current.Addr)
	assert.Equal(t, int64(3*1e8), r.Current.Balance)
	assert.Equal(t, int64(7*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)
	assert.Equal(t, int64(3*1e8), accCoin.LoadExecAccount(addr2, execaddr).Balance)

	_, err = accCoin.ExecTransfer(addr1, addr1, execaddr, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = accCoin.ExecTransfer(addr1, addr2, execaddr, 8*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestExecTransferKeep(t *testing.T) {
	accCoin, _ := GenerAccDb(t)
	accCoin.GenerAccData()
	execaddr := address.ExecAddress("lottery")
	_, err := accCoin.TransferToExec(addr1, execaddr, 10*1e8)
	require.NoError(t, err)

	assert.Equal(t, int64(8*1e8), accCoin.ExecAvailable(addr1, execaddr, 2*1e8))
	assert.Equal(t, int64(0), accCoin.ExecAvailable(addr1, execaddr, 20*1e8))
	assert.Equal(t, int64(0), accCoin.ExecAvailable(addr3, execaddr, 0))

	_, err = accCoin.ExecTransferKeep(addr1, addr2, execaddr, 9*1e8, 2*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = accCoin.ExecTransferKeep(addr1, addr2, execaddr, 8*1e8, -1)
	assert.Equal(t, types.ErrAmount, err)
	_, err = accCoin.ExecTransferKeep(addr1, addr2, execaddr, 8*1e8, 2*1e8)
	require.NoError(t, err)
	assert.Equal(t, int64(2*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, int64(0), SaturatingSub(5, 5))
	assert.Equal(t, int64(0), SaturatingSub(4, 5))
	assert.Equal(t, int64(1), SaturatingSub(6, 5))
	assert.Equal(t, int64(0), SaturatingSub(0, 23677920))
}
