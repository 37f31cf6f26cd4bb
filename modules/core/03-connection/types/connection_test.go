package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibc-labs/loopback/modules/core/03-connection/types"
	commitmenttypes "github.com/ibc-labs/loopback/modules/core/23-commitment/types"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

var (
	clientID             = "07-tendermint-0"
	counterpartyClientID = "07-tendermint-1"
	connectionID         = "connection-0"

	emptyPrefix = commitmenttypes.MerklePrefix{}
	prefix      = commitmenttypes.NewMerklePrefix([]byte("ibc"))
)

func TestConnectionValidateBasic(t *testing.T) {
	testCases := []struct {
		name       string
		connection types.ConnectionEnd
		expPass    bool
	}{
		{
			"valid connection",
			types.NewConnectionEnd(types.INIT, clientID, types.NewCounterparty(counterpartyClientID, connectionID, prefix), 500),
			true,
		},
		{
			"valid sentinel localhost connection",
			types.NewConnectionEnd(types.OPEN, exported.LocalhostClientID, types.NewCounterparty(exported.LocalhostClientID, exported.LocalhostConnectionID, prefix), 0),
			true,
		},
		{
			"invalid client id",
			types.NewConnectionEnd(types.INIT, "(clientID)", types.NewCounterparty(counterpartyClientID, connectionID, prefix), 500),
			false,
		},
		{
			"invalid counterparty prefix",
			types.NewConnectionEnd(types.INIT, clientID, types.NewCounterparty(counterpartyClientID, connectionID, emptyPrefix), 500),
			false,
		},
	}

	for _, tc := range testCases {
		err := tc.connection.ValidateBasic()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestCounterpartyValidateBasic(t *testing.T) {
	testCases := []struct {
		name         string
		counterparty types.Counterparty
		expPass      bool
	}{
		{"valid counterparty", types.NewCounterparty(counterpartyClientID, connectionID, prefix), true},
		{"valid empty connection id", types.NewCounterparty(counterpartyClientID, "", prefix), true},
		{"valid sentinel localhost counterparty", types.NewCounterparty(exported.LocalhostClientID, exported.LocalhostConnectionID, prefix), true},
		{"invalid client id", types.NewCounterparty("(clientID)", connectionID, prefix), false},
		{"invalid connection id", types.NewCounterparty(counterpartyClientID, "(connectionID)", prefix), false},
		{"empty prefix", types.NewCounterparty(counterpartyClientID, connectionID, emptyPrefix), false},
	}

	for _, tc := range testCases {
		err := tc.counterparty.ValidateBasic()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}
