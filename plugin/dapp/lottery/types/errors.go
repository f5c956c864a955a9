// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"

	"github.com/33cn/lottery/types"
	pkgerr "github.com/pkg/errors"
)

var (
	ErrLotteryNotFound          = errors.New("ErrLotteryNotFound")
	ErrLotteryNotActive         = errors.New("ErrLotteryNotActive")
	ErrLotteryIsActive          = errors.New("ErrLotteryIsActive")
	ErrLotteryInvalidNumbers    = errors.New("ErrLotteryInvalidNumbers")
	ErrLotterySoldOut           = errors.New("ErrLotterySoldOut")
	ErrLotteryNoTicketsSold     = errors.New("ErrLotteryNoTicketsSold")
	ErrLotteryAlreadyClaimed    = errors.New("ErrLotteryAlreadyClaimed")
	ErrLotteryNumbersNotDrawn   = errors.New("ErrLotteryNumbersNotDrawn")
	ErrLotteryNumbersDoNotMatch = errors.New("ErrLotteryNumbersDoNotMatch")
	ErrTicketNotFound           = errors.New("ErrTicketNotFound")
	ErrUnauthorized             = errors.New("ErrUnauthorized")
	ErrLotteryDrawer            = errors.New("ErrLotteryDrawer")
)

//ErrCategory 错误的分类
type ErrCategory int

//错误分类
const (
	CategoryUnknown ErrCategory = iota
	InvalidInput
	PreconditionFailed
	AuthorizationFailed
	CapacityExceeded
	NoDemand
	Mismatch
	AlreadyExists
	NotFound
	InsufficientFunds
)

var categoryName = map[ErrCategory]string{
	CategoryUnknown:     "Unknown",
	InvalidInput:        "InvalidInput",
	PreconditionFailed:  "PreconditionFailed",
	AuthorizationFailed: "AuthorizationFailed",
	CapacityExceeded:    "CapacityExceeded",
	NoDemand:            "NoDemand",
	Mismatch:            "Mismatch",
	AlreadyExists:       "AlreadyExists",
	NotFound:            "NotFound",
	InsufficientFunds:   "InsufficientFunds",
}

func (c ErrCategory) String() string {
	return categoryName[c]
}

var errCategory = map[error]ErrCategory{
	ErrLotteryInvalidNumbers:    InvalidInput,
	types.ErrInvalidParam:       InvalidInput,
	ErrLotteryNotActive:         PreconditionFailed,
	ErrLotteryIsActive:          PreconditionFailed,
	ErrLotteryNumbersNotDrawn:   PreconditionFailed,
	ErrLotteryAlreadyClaimed:    PreconditionFailed,
	ErrUnauthorized:             AuthorizationFailed,
	ErrLotterySoldOut:           CapacityExceeded,
	ErrLotteryNoTicketsSold:     NoDemand,
	ErrLotteryNumbersDoNotMatch: Mismatch,
	types.ErrAlreadyExists:      AlreadyExists,
	ErrLotteryNotFound:          NotFound,
	ErrTicketNotFound:           NotFound,
	types.ErrNoBalance:          InsufficientFunds,
}

//Category 错误所属的分类, 包装过的错误先取出原始错误
func Category(err error) ErrCategory {
	if err == nil {
		return CategoryUnknown
	}
	if c, ok := errCategory[pkgerr.Cause(err)]; ok {
		return c
	}
	return CategoryUnknown
}
