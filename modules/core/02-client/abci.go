package client

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-labs/loopback/modules/core/02-client/keeper"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

// BeginBlocker updates the loopback client with the latest block height if it
// is active. Running on every block keeps the stored latest height equal to
// the true local height before any verification in the same block executes.
func BeginBlocker(ctx sdk.Context, k keeper.Keeper) {
	if clientState, found := k.GetClientState(ctx, exported.LocalhostClientID); found {
		if k.GetClientStatus(ctx, exported.LocalhostClientID) == exported.Active {
			k.UpdateLocalhostClient(ctx, clientState)
		}
	}
}
