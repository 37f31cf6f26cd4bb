package host

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidID     = errorsmod.Register(SubModuleName, 2, "invalid identifier")
	ErrInvalidPath   = errorsmod.Register(SubModuleName, 3, "invalid path")
	ErrInvalidPrefix = errorsmod.Register(SubModuleName, 4, "invalid prefix")
)
