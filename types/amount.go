// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/shopspring/decimal"
)

var coinDecimal = decimal.NewFromInt(Coin)

//FormatAmount 以 Coin 为单位显示金额, 保留4位小数
func FormatAmount(amount int64) string {
	return decimal.NewFromInt(amount).Div(coinDecimal).StringFixed(4)
}
