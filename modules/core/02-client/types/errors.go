package types

import (
	errorsmod "cosmossdk.io/errors"
)

// IBC client sentinel errors
var (
	ErrClientExists                    = errorsmod.Register(SubModuleName, 2, "light client already exists")
	ErrInvalidClient                   = errorsmod.Register(SubModuleName, 3, "light client is invalid")
	ErrClientNotFound                  = errorsmod.Register(SubModuleName, 4, "light client not found")
	ErrClientNotActive                 = errorsmod.Register(SubModuleName, 5, "light client is not active")
	ErrInvalidClientType               = errorsmod.Register(SubModuleName, 6, "invalid client type")
	ErrInvalidConsensus                = errorsmod.Register(SubModuleName, 7, "invalid consensus state")
	ErrInvalidHeight                   = errorsmod.Register(SubModuleName, 8, "invalid height")
	ErrInvalidChainID                  = errorsmod.Register(SubModuleName, 9, "invalid chain-id")
	ErrUpdateClientFailed              = errorsmod.Register(SubModuleName, 10, "unable to update light client")
	ErrInvalidClientIdentifier         = errorsmod.Register(SubModuleName, 11, "invalid client identifier")
	ErrFailedMembershipVerification    = errorsmod.Register(SubModuleName, 12, "membership verification failed")
	ErrFailedNonMembershipVerification = errorsmod.Register(SubModuleName, 13, "non-membership verification failed")
	ErrInvalidParams                   = errorsmod.Register(SubModuleName, 14, "invalid client params")
)
