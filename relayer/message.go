package relayer

import (
	"context"

	clienttypes "github.com/ibc-labs/loopback/modules/core/02-client/types"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

// Message is a proof-carrying IBC message bound for a ledger. ConnectionHops
// holds the connection identifiers the message routes over; the first hop
// determines whether the message stays on the local ledger.
type Message struct {
	// TypeURL identifies the message being relayed.
	TypeURL string

	// ConnectionHops are the connection identifiers in the order they are
	// traversed, starting with the connection on the sending ledger.
	ConnectionHops []string

	// Proof is the commitment proof for the message. It is overwritten with
	// the sentinel proof when the message is redirected locally.
	Proof []byte

	// ProofHeight is the height at which the proof was queried. It is zeroed
	// when the message is redirected locally.
	ProofHeight clienttypes.Height

	// Data is the opaque message payload.
	Data []byte
}

// IsLocalhost reports whether the message routes over the sentinel localhost
// connection and must therefore be executed on the sending ledger itself.
func (m Message) IsLocalhost() bool {
	return len(m.ConnectionHops) > 0 && m.ConnectionHops[0] == exported.LocalhostConnectionID
}

// Endpoint submits assembled IBC messages to a ledger for execution.
type Endpoint interface {
	// ChainID returns the identifier of the ledger this endpoint submits to.
	ChainID() string

	// SendMessages delivers the messages for execution. Delivery is atomic per
	// call: either all messages are executed or none are.
	SendMessages(ctx context.Context, msgs []Message) error
}
