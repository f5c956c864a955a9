// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrAmount                  = errors.New("ErrAmount")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrInvalidAddress          = errors.New("ErrInvalidAddress")
	ErrFromAddr                = errors.New("ErrFromAddr")
	ErrAlreadyExists           = errors.New("ErrAlreadyExists")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrMethodReturnType        = errors.New("ErrMethodReturnType")
	ErrMethodNotFound          = errors.New("ErrMethodNotFound")
	ErrDecode                  = errors.New("ErrDecode")
	ErrEmpty                   = errors.New("ErrEmpty")
	ErrLogType                 = errors.New("ErrLogType")
	ErrExecNameNotAllow        = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow      = errors.New("ErrSymbolNameNotAllow")
	ErrExecNotFound            = errors.New("ErrExecNotFound")
	ErrNotAllow                = errors.New("ErrNotAllow")
	ErrUnRegistedDriver        = errors.New("ErrUnRegistedDriver")
	ErrUnknowDriver            = errors.New("ErrUnknowDriver")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrReRunGenesis            = errors.New("ErrReRunGenesis")
	ErrNotAllowMemSetKey       = errors.New("ErrNotAllowMemSetKey")
	ErrLocalPrefix             = errors.New("ErrLocalPrefix")
	ErrTxFeeTooLow             = errors.New("ErrTxFeeTooLow")
	ErrTxDup                   = errors.New("ErrTxDup")
	ErrTxMsgSizeTooBig         = errors.New("ErrTxMsgSizeTooBig")
	ErrCloseDB                 = errors.New("ErrCloseDB")
	ErrDBFlag                  = errors.New("ErrDBFlag")
	ErrTxNotExist              = errors.New("ErrTxNotExist")
)
