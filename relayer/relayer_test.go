package relayer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	clienttypes "github.com/ibc-labs/loopback/modules/core/02-client/types"
	"github.com/ibc-labs/loopback/modules/core/exported"
	localhost "github.com/ibc-labs/loopback/modules/light-clients/09-localhost"
	"github.com/ibc-labs/loopback/relayer"
)

// mockEndpoint records the messages delivered to it and fails a configurable
// number of times before succeeding.
type mockEndpoint struct {
	chainID  string
	received [][]relayer.Message
	failures int
}

func (m *mockEndpoint) ChainID() string { return m.chainID }

func (m *mockEndpoint) SendMessages(_ context.Context, msgs []relayer.Message) error {
	if m.failures > 0 {
		m.failures--
		return errors.New("endpoint unavailable")
	}
	m.received = append(m.received, msgs)
	return nil
}

func TestRelayLocalhostRedirect(t *testing.T) {
	local := &mockEndpoint{chainID: "testchain-1"}
	remote := &mockEndpoint{chainID: "testchain-2"}
	r := relayer.NewRelayer(zaptest.NewLogger(t), local, remote)

	msg := relayer.Message{
		TypeURL:        "/ibc.core.channel.v1.MsgRecvPacket",
		ConnectionHops: []string{exported.LocalhostConnectionID},
		Proof:          []byte("queried-proof"),
		ProofHeight:    clienttypes.NewHeight(1, 25),
		Data:           []byte("packet-data"),
	}

	require.NoError(t, r.Relay(context.Background(), []relayer.Message{msg}))

	// the message must never reach the remote endpoint
	require.Empty(t, remote.received)
	require.Len(t, local.received, 1)
	require.Len(t, local.received[0], 1)

	delivered := local.received[0][0]
	require.Equal(t, localhost.SentinelProof, delivered.Proof)
	require.Equal(t, clienttypes.ZeroHeight(), delivered.ProofHeight)
	require.Equal(t, msg.Data, delivered.Data)
}

func TestRelayRemote(t *testing.T) {
	local := &mockEndpoint{chainID: "testchain-1"}
	remote := &mockEndpoint{chainID: "testchain-2"}
	r := relayer.NewRelayer(zaptest.NewLogger(t), local, remote)

	msg := relayer.Message{
		TypeURL:        "/ibc.core.channel.v1.MsgRecvPacket",
		ConnectionHops: []string{"connection-0"},
		Proof:          []byte("queried-proof"),
		ProofHeight:    clienttypes.NewHeight(1, 25),
	}

	require.NoError(t, r.Relay(context.Background(), []relayer.Message{msg}))

	require.Empty(t, local.received)
	require.Len(t, remote.received, 1)

	// the queried proof is forwarded untouched
	require.Equal(t, msg.Proof, remote.received[0][0].Proof)
	require.Equal(t, msg.ProofHeight, remote.received[0][0].ProofHeight)
}

func TestRelayRemoteRetries(t *testing.T) {
	local := &mockEndpoint{chainID: "testchain-1"}
	remote := &mockEndpoint{chainID: "testchain-2", failures: 2}
	r := relayer.NewRelayer(zaptest.NewLogger(t), local, remote)

	msg := relayer.Message{ConnectionHops: []string{"connection-0"}}

	require.NoError(t, r.Relay(context.Background(), []relayer.Message{msg}))
	require.Len(t, remote.received, 1)
}

func TestRelayMixedBatch(t *testing.T) {
	local := &mockEndpoint{chainID: "testchain-1"}
	remote := &mockEndpoint{chainID: "testchain-2"}
	r := relayer.NewRelayer(zaptest.NewLogger(t), local, remote)

	msgs := []relayer.Message{
		{ConnectionHops: []string{exported.LocalhostConnectionID, "connection-4"}},
		{ConnectionHops: []string{"connection-0"}},
		{ConnectionHops: []string{exported.LocalhostConnectionID}},
	}

	require.NoError(t, r.Relay(context.Background(), msgs))

	require.Len(t, local.received, 1)
	require.Len(t, local.received[0], 2)
	require.Len(t, remote.received, 1)
	require.Len(t, remote.received[0], 1)
}

func TestMessageIsLocalhost(t *testing.T) {
	require.True(t, relayer.Message{ConnectionHops: []string{exported.LocalhostConnectionID}}.IsLocalhost())
	require.False(t, relayer.Message{ConnectionHops: []string{"connection-0", exported.LocalhostConnectionID}}.IsLocalhost())
	require.False(t, relayer.Message{}.IsLocalhost())
}
