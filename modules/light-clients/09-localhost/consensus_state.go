package localhost

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/ibc-labs/loopback/modules/core/02-client/types"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

var _ exported.ConsensusState = (*ConsensusState)(nil)

// ClientType returns the 09-localhost client type.
func (ConsensusState) ClientType() string {
	return exported.Localhost
}

// GetRoot returns nil. The loopback client verifies against direct store
// reads and carries no commitment root.
func (ConsensusState) GetRoot() exported.Root {
	return nil
}

// GetTimestamp returns zero. The loopback client does not store consensus states.
func (ConsensusState) GetTimestamp() uint64 {
	return 0
}

// ValidateBasic returns an error. A localhost consensus state must never be
// produced, stored or consumed; the type exists only to satisfy the generic
// client interface shape.
func (ConsensusState) ValidateBasic() error {
	return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "localhost client does not support consensus states")
}
