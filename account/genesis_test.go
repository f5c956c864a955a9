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

func TestGenesisInit(t *testing.T) {
	accCoin, _ := GenerAccDb(t)
	accCoin.GenerAccData()
	receipt, err := accCoin.GenesisInit(addr1, 100*1e8)
	require.NoError(t, err)
	require.Equal(t, int64(1100*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int32(types.TyLogGenesisTransfer), receipt.Logs[0].Ty)

	_, err = accCoin.GenesisInit(addr1, types.MaxCoin)
	assert.Equal(t, types.ErrAmount, err)
}

func TestGenesisInitExec(t *testing.T) {
	accCoin, _ := GenerAccDb(t)
	execaddr := address.ExecAddress("coins")
	receipt, err := accCoin.GenesisInitExec(addr1, 10*1e8, execaddr)
	require.NoError(t, err)
	require.Equal(t, int64(10*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)
	require.Equal(t, int64(10*1e8), accCoin.LoadAccount(execaddr).Balance)
	require.Equal(t, 2, len(receipt.Logs))
	assert.Equal(t, int32(types.TyLogGenesisDeposit), receipt.Logs[1].Ty)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
}
