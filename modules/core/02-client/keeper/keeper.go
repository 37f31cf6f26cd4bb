package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cometbft/cometbft/libs/log"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-labs/loopback/modules/core/02-client/types"
	host "github.com/ibc-labs/loopback/modules/core/24-host"
	"github.com/ibc-labs/loopback/modules/core/exported"
	localhost "github.com/ibc-labs/loopback/modules/light-clients/09-localhost"
)

// Keeper represents a type that grants read and write permissions to any client
// state information
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec
}

// NewKeeper creates a new NewKeeper instance
func NewKeeper(cdc codec.BinaryCodec, key storetypes.StoreKey) Keeper {
	return Keeper{
		storeKey: key,
		cdc:      cdc,
	}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// Codec returns the IBC module codec.
func (k Keeper) Codec() codec.BinaryCodec {
	return k.cdc
}

// GenerateClientIdentifier returns the next client identifier.
func (k Keeper) GenerateClientIdentifier(ctx sdk.Context, clientType string) string {
	nextClientSeq := k.GetNextClientSequence(ctx)
	clientID := types.FormatClientIdentifier(clientType, nextClientSeq)

	nextClientSeq++
	k.SetNextClientSequence(ctx, nextClientSeq)
	return clientID
}

// GetClientState gets a particular client from the store
func (k Keeper) GetClientState(ctx sdk.Context, clientID string) (exported.ClientState, bool) {
	store := k.ClientStore(ctx, clientID)
	bz := store.Get(host.ClientStateKey())
	if len(bz) == 0 {
		return nil, false
	}

	clientState := types.MustUnmarshalClientState(k.cdc, bz)
	return clientState, true
}

// SetClientState sets a particular Client to the store
func (k Keeper) SetClientState(ctx sdk.Context, clientID string, clientState exported.ClientState) {
	store := k.ClientStore(ctx, clientID)
	store.Set(host.ClientStateKey(), types.MustMarshalClientState(k.cdc, clientState))
}

// HasClient asserts a client exists in the store for the provided client identifier.
func (k Keeper) HasClient(ctx sdk.Context, clientID string) bool {
	store := k.ClientStore(ctx, clientID)
	return store.Has(host.ClientStateKey())
}

// GetNextClientSequence gets the next client sequence from the store.
func (k Keeper) GetNextClientSequence(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(host.KeyNextClientSequence))
	if len(bz) == 0 {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

// SetNextClientSequence sets the next client sequence to the store.
func (k Keeper) SetNextClientSequence(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := sdk.Uint64ToBigEndian(sequence)
	store.Set([]byte(host.KeyNextClientSequence), bz)
}

// ClientStore returns isolated prefix store for each client so they can read/write in separate
// namespace without being able to read/write other client's data
func (k Keeper) ClientStore(ctx sdk.Context, clientID string) sdk.KVStore {
	clientPrefix := []byte(host.FullClientPath(clientID, ""))
	return prefix.NewStore(ctx.KVStore(k.storeKey), clientPrefix)
}

// GetClientStatus returns the status for a given clientID. If the client type is
// not in the allowed clients param field, Unauthorized is returned, otherwise the
// status is obtained from the client state.
func (k Keeper) GetClientStatus(ctx sdk.Context, clientID string) exported.Status {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return exported.Unknown
	}

	clientType, _, err := types.ParseClientIdentifier(clientID)
	if err != nil {
		return exported.Unknown
	}

	if !k.GetParams(ctx).IsAllowedClient(clientType) {
		return exported.Unknown
	}

	return clientState.Status(ctx, k.ClientStore(ctx, clientID), k.cdc)
}

// GetParams returns the total set of ibc-client parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(types.KeyAllowedClientPrefix))
	if len(bz) == 0 {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

// SetParams sets the total set of ibc-client parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshal(&params)
	store.Set([]byte(types.KeyAllowedClientPrefix), bz)
}

// CreateLocalhostClient initialises the sentinel 09-localhost client with the
// current self height. It is called at genesis or during an upgrade, exactly
// once; provisioning an already existing loopback client fails and commits no
// partial state.
func (k Keeper) CreateLocalhostClient(ctx sdk.Context) error {
	if k.HasClient(ctx, exported.LocalhostClientID) {
		return errorsmod.Wrapf(types.ErrClientExists, "cannot create a second loopback client with identifier %s", exported.LocalhostClientID)
	}

	clientState := localhost.ClientState{LatestHeight: types.GetSelfHeight(ctx)}
	return clientState.Initialize(ctx, k.cdc, k.ClientStore(ctx, exported.LocalhostClientID), nil)
}

// UpdateLocalhostClient updates the 09-localhost client to the latest block
// height. It is invoked from the BeginBlocker so the stored latest height
// never lags the true local height, and may additionally be called on demand
// before a verification that depends on freshness.
func (k Keeper) UpdateLocalhostClient(ctx sdk.Context, clientState exported.ClientState) []exported.Height {
	return clientState.UpdateState(ctx, k.cdc, k.ClientStore(ctx, exported.LocalhostClientID), nil)
}

// VerifyMembership retrieves the light client module for the clientID and
// verifies the proof of the existence of a key-value pair at a specified
// height. For the 09-localhost client the full IBC store is used: the client
// is verifying paths belonging to arbitrary other modules of the same ledger,
// not its own client substate.
func (k Keeper) VerifyMembership(ctx sdk.Context, clientID string, height exported.Height, delayTimePeriod uint64, delayBlockPeriod uint64, proof []byte, path exported.Path, value []byte) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrap(types.ErrClientNotFound, clientID)
	}

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot verify with client (%s) with status %s", clientID, status)
	}

	return clientState.VerifyMembership(ctx, k.verificationStore(ctx, clientID), k.cdc, height, delayTimePeriod, delayBlockPeriod, proof, path, value)
}

// VerifyNonMembership retrieves the light client module for the clientID and
// verifies the absence of a given key at a specified height. See VerifyMembership
// for the store selection rule.
func (k Keeper) VerifyNonMembership(ctx sdk.Context, clientID string, height exported.Height, delayTimePeriod uint64, delayBlockPeriod uint64, proof []byte, path exported.Path) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrap(types.ErrClientNotFound, clientID)
	}

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot verify with client (%s) with status %s", clientID, status)
	}

	return clientState.VerifyNonMembership(ctx, k.verificationStore(ctx, clientID), k.cdc, height, delayTimePeriod, delayBlockPeriod, proof, path)
}

// verificationStore returns the store a client verifies against: the entire
// IBC store for the loopback client, an isolated client prefixed store for
// every other client.
func (k Keeper) verificationStore(ctx sdk.Context, clientID string) sdk.KVStore {
	if clientID == exported.LocalhostClientID {
		return ctx.KVStore(k.storeKey)
	}
	return k.ClientStore(ctx, clientID)
}
