// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	pty "github.com/33cn/lottery/plugin/dapp/lottery/types"
	"github.com/pkg/errors"
)

//开奖方式
const (
	DrawerBlock = "block"
	DrawerFixed = "fixed"
)

//Drawer 开奖号码的来源, 换成可验证的随机数只需要实现这个接口
type Drawer interface {
	Draw(height, blocktime int64) ([]int32, error)
}

var blockDivisors = [pty.NumbersLen]uint64{1, 7, 13, 17, 23, 29}

//BlockDrawer 用高度和时间生成号码, 可以被预测, 号码可以重复
type BlockDrawer struct{}

//Draw draw
func (BlockDrawer) Draw(height, blocktime int64) ([]int32, error) {
	seed := uint64(height) * uint64(blocktime)
	numbers := make([]int32, pty.NumbersLen)
	for i, div := range blockDivisors {
		numbers[i] = int32((seed/div)%pty.MaxNumber) + pty.MinNumber
	}
	return numbers, nil
}

//FixedDrawer 返回配置的号码, 用于测试
type FixedDrawer struct {
	Numbers []int32
}

//Draw draw
func (d *FixedDrawer) Draw(height, blocktime int64) ([]int32, error) {
	if len(d.Numbers) != pty.NumbersLen {
		return nil, errors.Wrapf(pty.ErrLotteryDrawer, "fixed numbers len %d", len(d.Numbers))
	}
	for _, n := range d.Numbers {
		if n < pty.MinNumber || n > pty.MaxNumber {
			return nil, errors.Wrapf(pty.ErrLotteryDrawer, "fixed number %d", n)
		}
	}
	numbers := make([]int32, pty.NumbersLen)
	copy(numbers, d.Numbers)
	return numbers, nil
}

//NewDrawer 根据配置选择开奖方式
func NewDrawer(cfg *pty.Config) (Drawer, error) {
	switch cfg.Drawer {
	case DrawerBlock, "":
		return BlockDrawer{}, nil
	case DrawerFixed:
		return &FixedDrawer{Numbers: cfg.FixedNumbers}, nil
	}
	return nil, errors.Wrapf(pty.ErrLotteryDrawer, "drawer %s", cfg.Drawer)
}
