package localhost

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"

	"github.com/ibc-labs/loopback/modules/core/exported"
)

// RegisterInterfaces registers the localhost concrete client-related
// implementations and interfaces.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*exported.ClientState)(nil),
		&ClientState{},
	)
	registry.RegisterImplementations(
		(*exported.ClientMessage)(nil),
		&Misbehaviour{},
	)
}
