package types

import (
	"cosmossdk.io/errors"
)

// fairswap module sentinel errors
var (
	ErrInvalidFeeSet       = errors.Register(ModuleName, 2, "invalid fee, must be below 10000 basis points")
	ErrPoolLocked          = errors.Register(ModuleName, 3, "pool is locked")
	ErrZeroBalance         = errors.Register(ModuleName, 4, "zero balance")
	ErrUnauthorized        = errors.Register(ModuleName, 5, "unauthorized")
	ErrInvalidPrecision    = errors.Register(ModuleName, 6, "invalid precision")
	ErrOverflow            = errors.Register(ModuleName, 7, "overflow")
	ErrUnderflow           = errors.Register(ModuleName, 8, "underflow")
	ErrInvalidFee          = errors.Register(ModuleName, 9, "invalid fee")
	ErrInsufficientBalance = errors.Register(ModuleName, 10, "insufficient balance")
	ErrSlippageExceeded    = errors.Register(ModuleName, 11, "slippage limit exceeded")
	ErrInvalidInputMint    = errors.Register(ModuleName, 12, "invalid input mint token")
	ErrPoolNotFound        = errors.Register(ModuleName, 13, "pool not found")
	ErrPoolAlreadyExists   = errors.Register(ModuleName, 14, "pool already exists")
	ErrInvalidPool         = errors.Register(ModuleName, 15, "invalid pool")
	ErrInvalidState        = errors.Register(ModuleName, 16, "invalid state")
)
