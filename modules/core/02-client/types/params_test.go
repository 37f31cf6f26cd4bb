package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibc-labs/loopback/modules/core/02-client/types"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

func TestIsAllowedClient(t *testing.T) {
	testCases := []struct {
		name       string
		clientType string
		params     types.Params
		expPass    bool
	}{
		{"success: valid client", "07-tendermint", types.NewParams("07-tendermint"), true},
		{"success: valid client with custom params", "07-tendermint", types.NewParams("07-tendermint", "06-solomachine"), true},
		{"success: allow all clients wildcard", exported.Localhost, types.DefaultParams(), true},
		{"success: localhost client on allowlist", exported.Localhost, types.NewParams("07-tendermint", exported.Localhost), true},
		{"failure: invalid client", "07-tendermint", types.NewParams("06-solomachine"), false},
		{"failure: blank client", " ", types.DefaultParams(), false},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expPass, tc.params.IsAllowedClient(tc.clientType), tc.name)
	}
}

func TestValidateParams(t *testing.T) {
	testCases := []struct {
		name    string
		params  types.Params
		expPass bool
	}{
		{"default params", types.DefaultParams(), true},
		{"custom params", types.NewParams("07-tendermint"), true},
		{"multiple clients", types.NewParams("07-tendermint", exported.Localhost), true},
		{"blank client", types.NewParams(" "), false},
		{"allow all clients plus valid client", types.NewParams(types.AllowAllClients, "07-tendermint"), false},
	}

	for _, tc := range testCases {
		err := tc.params.Validate()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}
