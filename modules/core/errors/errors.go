package errors

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "ibc"

// Shared sentinel errors for the core IBC submodules.
var (
	// ErrInvalidRequest defines an ABCI typed error where the request contains invalid data.
	ErrInvalidRequest = errorsmod.Register(codespace, 2, "invalid request")

	// ErrInvalidType defines an error for an invalid type
	ErrInvalidType = errorsmod.Register(codespace, 3, "invalid type")

	// ErrPackAny defines an error when packing a protobuf message to Any fails.
	ErrPackAny = errorsmod.Register(codespace, 4, "failed packing protobuf message to Any")

	// ErrUnpackAny defines an error when unpacking a protobuf message from Any fails.
	ErrUnpackAny = errorsmod.Register(codespace, 5, "failed unpacking protobuf message from Any")

	// ErrNotFound defines an error when requested entity doesn't exist in the state.
	ErrNotFound = errorsmod.Register(codespace, 6, "entity does not exist")
)
