package types

import (
	errorsmod "cosmossdk.io/errors"
)

// IBC connection sentinel errors
var (
	ErrConnectionExists            = errorsmod.Register(SubModuleName, 2, "connection already exists")
	ErrConnectionNotFound          = errorsmod.Register(SubModuleName, 3, "connection not found")
	ErrInvalidConnection           = errorsmod.Register(SubModuleName, 4, "invalid connection")
	ErrInvalidConnectionIdentifier = errorsmod.Register(SubModuleName, 5, "invalid connection identifier")
	ErrInvalidCounterparty         = errorsmod.Register(SubModuleName, 6, "invalid counterparty connection")
	ErrInvalidConnectionState      = errorsmod.Register(SubModuleName, 7, "invalid connection state")
)
