// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/lottery/common/address"
	"github.com/33cn/lottery/common/db"
	"github.com/33cn/lottery/common/db/local"
	drivers "github.com/33cn/lottery/system/dapp"
	cty "github.com/33cn/lottery/system/dapp/coins/types"
	"github.com/33cn/lottery/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = address.ExecAddress("user.coins1")
	addr2 = address.ExecAddress("user.coins2")
)

func init() {
	Init(driverName, nil)
}

type coinsEnv struct {
	driver  drivers.Driver
	statedb *local.DB
	localdb *local.DB
}

func newCoinsEnv(t *testing.T) *coinsEnv {
	memdb, err := db.NewGoMemDB("coins", "", 128)
	require.NoError(t, err)
	driver, err := drivers.LoadDriver(driverName, 0)
	require.NoError(t, err)
	env := &coinsEnv{
		driver:  driver,
		statedb: local.NewLocalDB(memdb, false),
		localdb: local.NewLocalDB(memdb, false),
	}
	driver.SetStateDB(env.statedb)
	driver.SetLocalDB(env.localdb)
	driver.SetEnv(0, 1539918074)
	return env
}

func (env *coinsEnv) exec(t *testing.T, tx *types.Transaction) (*types.Receipt, error) {
	require.NoError(t, env.driver.CheckTx(tx, 0))
	receipt, err := env.driver.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	data := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := env.driver.ExecLocal(tx, data, 0)
	require.NoError(t, err)
	for _, kv := range set.KV {
		require.NoError(t, env.localdb.Set(kv.Key, kv.Value))
	}
	return receipt, nil
}

func (env *coinsEnv) balance(addr string) int64 {
	return env.driver.GetCoinsAccount().LoadAccount(addr).Balance
}

func TestCoinsGenesisAndTransfer(t *testing.T) {
	env := newCoinsEnv(t)
	tx, err := cty.NewGenesisTx(addr1, addr1, 100*types.Coin)
	require.NoError(t, err)
	receipt, err := env.exec(t, tx)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, 100*types.Coin, env.balance(addr1))

	//创世只能在高度 0 执行
	env.driver.SetEnv(1, 1539918075)
	_, err = env.exec(t, tx)
	assert.Equal(t, types.ErrReRunGenesis, err)

	tx, err = cty.NewTransferTx(addr1, addr2, 10*types.Coin, nil)
	require.NoError(t, err)
	_, err = env.exec(t, tx)
	require.NoError(t, err)
	assert.Equal(t, 90*types.Coin, env.balance(addr1))
	assert.Equal(t, 10*types.Coin, env.balance(addr2))

	tx, err = cty.NewTransferTx(addr2, addr1, 11*types.Coin, nil)
	require.NoError(t, err)
	_, err = env.exec(t, tx)
	assert.Equal(t, types.ErrNoBalance, err)

	tx, err = cty.NewTransferTx(addr1, addr1, types.Coin, nil)
	require.NoError(t, err)
	_, err = env.exec(t, tx)
	assert.Equal(t, types.ErrSendSameToRecv, err)

	tx, err = cty.NewTransferTx(addr1, addr2, 0, nil)
	require.NoError(t, err)
	_, err = env.exec(t, tx)
	assert.Equal(t, types.ErrAmount, err)

	reply, err := env.driver.Query("GetAddrReciver", types.Encode(&types.ReqString{Data: addr2}))
	require.NoError(t, err)
	assert.Equal(t, 10*types.Coin, reply.(*types.Int64).Data)
}

func TestCoinsTransferToExecAndWithdraw(t *testing.T) {
	env := newCoinsEnv(t)
	tx, err := cty.NewGenesisTx(addr1, addr1, 100*types.Coin)
	require.NoError(t, err)
	_, err = env.exec(t, tx)
	require.NoError(t, err)
	env.driver.SetEnv(1, 1539918075)

	tx, err = cty.NewTransferToExecTx(addr1, driverName, 30*types.Coin)
	require.NoError(t, err)
	_, err = env.exec(t, tx)
	require.NoError(t, err)
	execaddr := address.ExecAddress(driverName)
	acc := env.driver.GetCoinsAccount().LoadExecAccount(addr1, execaddr)
	assert.Equal(t, 30*types.Coin, acc.Balance)
	assert.Equal(t, 30*types.Coin, env.balance(execaddr))

	reply, err := env.driver.Query("GetBalance", types.Encode(&types.ReqBalance{Addresses: []string{addr1}, Execer: driverName}))
	require.NoError(t, err)
	accs := reply.(*types.Accounts).Acc
	require.Equal(t, 1, len(accs))
	assert.Equal(t, 30*types.Coin, accs[0].Balance)

	//执行器名称和地址不一致
	tx.To = addr2
	_, err = env.driver.Exec(tx, 0)
	assert.Equal(t, types.ErrToAddrNotSameToExecAddr, err)

	tx, err = cty.NewWithdrawTx(addr1, driverName, 20*types.Coin)
	require.NoError(t, err)
	_, err = env.exec(t, tx)
	require.NoError(t, err)
	assert.Equal(t, 90*types.Coin, env.balance(addr1))
	acc = env.driver.GetCoinsAccount().LoadExecAccount(addr1, execaddr)
	assert.Equal(t, 10*types.Coin, acc.Balance)

	tx, err = cty.NewWithdrawTx(addr1, driverName, 20*types.Coin)
	require.NoError(t, err)
	_, err = env.exec(t, tx)
	assert.Equal(t, types.ErrNoBalance, err)

	tx.To = addr2
	_, err = env.driver.Exec(tx, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
}

func TestCoinsExecDelLocal(t *testing.T) {
	env := newCoinsEnv(t)
	tx, err := cty.NewGenesisTx(addr1, addr1, 100*types.Coin)
	require.NoError(t, err)
	receipt, err := env.exec(t, tx)
	require.NoError(t, err)

	count, err := env.driver.Query("GetPrefixCount", types.Encode(&types.ReqKey{Key: []byte("LODB-coins-Addr:")}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.(*types.Int64).Data)

	data := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := env.driver.ExecDelLocal(tx, data, 0)
	require.NoError(t, err)
	require.Equal(t, 1, len(set.KV))
	var recv types.Int64
	require.NoError(t, types.Decode(set.KV[0].Value, &recv))
	assert.Equal(t, int64(0), recv.Data)

	//失败的交易不写本地数据库
	set, err = env.driver.ExecLocal(tx, &types.ReceiptData{Ty: types.ExecErr}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, len(set.KV))

	//金额回到 0 以后记录被当作删除
	count, err = env.driver.Query("GetPrefixCount", types.Encode(&types.ReqKey{Key: []byte("LODB-coins-Addr:")}))
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.(*types.Int64).Data)

	_, err = env.driver.Query("GetAddrReciver", types.Encode(&types.ReqString{Data: addr2}))
	assert.Equal(t, types.ErrEmpty, err)
}
