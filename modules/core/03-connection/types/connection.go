package types

import (
	errorsmod "cosmossdk.io/errors"

	commitmenttypes "github.com/ibc-labs/loopback/modules/core/23-commitment/types"
	host "github.com/ibc-labs/loopback/modules/core/24-host"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

// NewConnectionEnd creates a new ConnectionEnd instance.
func NewConnectionEnd(state State, clientID string, counterparty Counterparty, delayPeriod uint64) ConnectionEnd {
	return ConnectionEnd{
		ClientId:     clientID,
		State:        state,
		Counterparty: counterparty,
		DelayPeriod:  delayPeriod,
	}
}

// GetClientID implements the Connection interface
func (c ConnectionEnd) GetClientID() string {
	return c.ClientId
}

// GetState implements the Connection interface
func (c ConnectionEnd) GetState() int32 {
	return int32(c.State)
}

// GetCounterparty implements the Connection interface
func (c ConnectionEnd) GetCounterparty() Counterparty {
	return c.Counterparty
}

// GetDelayPeriod implements the Connection interface
func (c ConnectionEnd) GetDelayPeriod() uint64 {
	return c.DelayPeriod
}

// ValidateBasic implements the Connection interface.
// NOTE: the protocol supported features are not validated.
func (c ConnectionEnd) ValidateBasic() error {
	if c.ClientId == exported.LocalhostClientID {
		return c.Counterparty.ValidateBasic()
	}
	if err := host.ClientIdentifierValidator(c.ClientId); err != nil {
		return errorsmod.Wrap(err, "invalid client ID")
	}
	return c.Counterparty.ValidateBasic()
}

// NewCounterparty creates a new Counterparty instance.
func NewCounterparty(clientID, connectionID string, prefix commitmenttypes.MerklePrefix) Counterparty {
	return Counterparty{
		ClientId:     clientID,
		ConnectionId: connectionID,
		Prefix:       prefix,
	}
}

// GetClientID implements the CounterpartyConnectionAPI interface
func (c Counterparty) GetClientID() string {
	return c.ClientId
}

// GetConnectionID implements the CounterpartyConnectionAPI interface
func (c Counterparty) GetConnectionID() string {
	return c.ConnectionId
}

// GetPrefix implements the CounterpartyConnectionAPI interface
func (c Counterparty) GetPrefix() exported.Prefix {
	return &c.Prefix
}

// ValidateBasic performs a basic validation check of the identifiers and prefix
func (c Counterparty) ValidateBasic() error {
	if c.ConnectionId != "" && c.ConnectionId != exported.LocalhostConnectionID {
		if err := host.ConnectionIdentifierValidator(c.ConnectionId); err != nil {
			return errorsmod.Wrap(err, "invalid counterparty connection ID")
		}
	}
	if c.ClientId != exported.LocalhostClientID {
		if err := host.ClientIdentifierValidator(c.ClientId); err != nil {
			return errorsmod.Wrap(err, "invalid counterparty client ID")
		}
	}
	if c.Prefix.Empty() {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty prefix cannot be empty")
	}
	return nil
}
