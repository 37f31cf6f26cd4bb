package localhost

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/ibc-labs/loopback/modules/core/02-client/types"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

var _ exported.ClientMessage = (*Misbehaviour)(nil)

// ClientType returns the 09-localhost client type.
func (Misbehaviour) ClientType() string {
	return exported.Localhost
}

// ValidateBasic returns an error. The loopback client never trusts a remote
// commitment root and therefore has no notion of misbehaviour.
func (Misbehaviour) ValidateBasic() error {
	return errorsmod.Wrap(clienttypes.ErrUpdateClientFailed, "localhost client does not support misbehaviour")
}
