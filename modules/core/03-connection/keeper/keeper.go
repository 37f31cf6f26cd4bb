package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cometbft/cometbft/libs/log"

	"github.com/cosmos/cosmos-sdk/codec"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-labs/loopback/modules/core/03-connection/types"
	commitmenttypes "github.com/ibc-labs/loopback/modules/core/23-commitment/types"
	host "github.com/ibc-labs/loopback/modules/core/24-host"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

// Keeper defines the IBC connection keeper
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec
}

// NewKeeper creates a new IBC connection Keeper instance
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

// GetCommitmentPrefix returns the IBC connection store prefix as a commitment
// Prefix
func (k Keeper) GetCommitmentPrefix() exported.Prefix {
	return commitmenttypes.NewMerklePrefix([]byte(k.storeKey.Name()))
}

// GenerateConnectionIdentifier returns the next connection identifier.
func (k Keeper) GenerateConnectionIdentifier(ctx sdk.Context) string {
	nextConnSeq := k.GetNextConnectionSequence(ctx)
	connectionID := types.FormatConnectionIdentifier(nextConnSeq)

	nextConnSeq++
	k.SetNextConnectionSequence(ctx, nextConnSeq)
	return connectionID
}

// GetConnection returns a connection with a particular identifier
func (k Keeper) GetConnection(ctx sdk.Context, connectionID string) (types.ConnectionEnd, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(host.ConnectionKey(connectionID))
	if len(bz) == 0 {
		return types.ConnectionEnd{}, false
	}

	var connection types.ConnectionEnd
	k.cdc.MustUnmarshal(bz, &connection)

	return connection, true
}

// HasConnection returns true if the connection with the provided identifier
// exists in the store.
func (k Keeper) HasConnection(ctx sdk.Context, connectionID string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(host.ConnectionKey(connectionID))
}

// SetConnection sets a connection to the store
func (k Keeper) SetConnection(ctx sdk.Context, connectionID string, connection types.ConnectionEnd) {
	store := ctx.KVStore(k.storeKey)
	bz := k.cdc.MustMarshal(&connection)
	store.Set(host.ConnectionKey(connectionID), bz)
}

// GetNextConnectionSequence gets the next connection sequence from the store.
func (k Keeper) GetNextConnectionSequence(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(host.KeyNextConnectionSequence))
	if len(bz) == 0 {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

// SetNextConnectionSequence sets the next connection sequence to the store.
func (k Keeper) SetNextConnectionSequence(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := sdk.Uint64ToBigEndian(sequence)
	store.Set([]byte(host.KeyNextConnectionSequence), bz)
}

// AddConnection persists a connection end under the provided identifier. The
// identifier must be a generated `connection-{N}` identifier; the sentinel
// loopback identifier is reserved and cannot be written through this path.
func (k Keeper) AddConnection(ctx sdk.Context, connectionID string, connection types.ConnectionEnd) error {
	if err := types.ValidateConnectionID(connectionID); err != nil {
		return err
	}

	if err := connection.ValidateBasic(); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidConnection, "invalid connection end for identifier %s: %v", connectionID, err)
	}

	if k.HasConnection(ctx, connectionID) {
		return errorsmod.Wrapf(types.ErrConnectionExists, "connection identifier %s already in use", connectionID)
	}

	k.SetConnection(ctx, connectionID, connection)
	emitConnectionCreatedEvent(ctx, connectionID, connection)
	return nil
}

// CreateSentinelLocalhostConnection creates and sets the sentinel localhost
// connection end in the IBC store. The connection is opened immediately, points
// to the 09-localhost client on both ends and carries the local commitment
// prefix as its counterparty prefix. Provisioning an already existing sentinel
// connection fails and leaves the store untouched.
func (k Keeper) CreateSentinelLocalhostConnection(ctx sdk.Context) error {
	if k.HasConnection(ctx, exported.LocalhostConnectionID) {
		return errorsmod.Wrapf(types.ErrConnectionExists, "cannot create a second sentinel connection with identifier %s", exported.LocalhostConnectionID)
	}

	counterparty := types.NewCounterparty(exported.LocalhostClientID, exported.LocalhostConnectionID, commitmenttypes.NewMerklePrefix([]byte(k.storeKey.Name())))
	connectionEnd := types.NewConnectionEnd(types.OPEN, exported.LocalhostClientID, counterparty, 0)

	k.SetConnection(ctx, exported.LocalhostConnectionID, connectionEnd)
	emitConnectionCreatedEvent(ctx, exported.LocalhostConnectionID, connectionEnd)
	return nil
}
