// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 框架公共错误
var (
	ErrNotFound           = errors.New("ErrNotFound")
	ErrInvalidParam       = errors.New("ErrInvalidParam")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrMethodReturnType   = errors.New("ErrMethodReturnType")
	ErrUnRegistedDriver   = errors.New("ErrUnRegistedDriver")
	ErrUnknowDriver       = errors.New("ErrUnknowDriver")
	ErrDecode             = errors.New("ErrDecode")
	ErrNoBalance          = errors.New("ErrNoBalance")
	ErrAmount             = errors.New("ErrAmount")
	ErrOverflow           = errors.New("ErrOverflow")
	ErrUnderflow          = errors.New("ErrUnderflow")
	ErrSendSameToRecv     = errors.New("ErrSendSameToRecv")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	ErrEmpty              = errors.New("ErrEmpty")
	ErrEmptyTx            = errors.New("ErrEmptyTx")
	ErrNoPrivilege        = errors.New("ErrNoPrivilege")
	ErrNotAllow           = errors.New("ErrNotAllow")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
)
