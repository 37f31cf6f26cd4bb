package localhost

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/ibc-labs/loopback/modules/core/02-client/types"
	commitmenttypes "github.com/ibc-labs/loopback/modules/core/23-commitment/types"
	host "github.com/ibc-labs/loopback/modules/core/24-host"
	ibcerrors "github.com/ibc-labs/loopback/modules/core/errors"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

// SentinelProof defines the 09-localhost sentinel proof.
// Submission of nil or empty proofs is disallowed in core IBC messaging.
// This serves as a placeholder value for relayers to leverage as the proof field in various message types.
// The verification engine itself does not inspect the proof; direct store reads
// are strictly stronger than any proof derived from the same store.
var SentinelProof = []byte{0x01}

var _ exported.ClientState = (*ClientState)(nil)

// NewClientState creates a new 09-localhost ClientState instance.
func NewClientState(height clienttypes.Height) exported.ClientState {
	return &ClientState{
		LatestHeight: height,
	}
}

// ClientType returns the 09-localhost client type.
func (ClientState) ClientType() string {
	return exported.Localhost
}

// GetLatestHeight returns the 09-localhost client state latest height.
func (cs ClientState) GetLatestHeight() exported.Height {
	return cs.LatestHeight
}

// Status always returns Active. The 09-localhost status cannot be changed.
func (ClientState) Status(_ sdk.Context, _ sdk.KVStore, _ codec.BinaryCodec) exported.Status {
	return exported.Active
}

// Validate performs a basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if cs.LatestHeight.RevisionHeight == 0 {
		return errorsmod.Wrapf(clienttypes.ErrInvalidHeight, "local revision height cannot be zero")
	}

	return nil
}

// Initialize ensures that the initial consensus state for localhost is nil and
// persists the client state. It rejects a second initialization; the loopback
// client may exist at most once.
func (cs ClientState) Initialize(ctx sdk.Context, cdc codec.BinaryCodec, clientStore sdk.KVStore, consState exported.ConsensusState) error {
	if consState != nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "initial consensus state for localhost must be nil")
	}

	if err := cs.Validate(); err != nil {
		return err
	}

	if clientStore.Has(host.ClientStateKey()) {
		return errorsmod.Wrapf(clienttypes.ErrClientExists, "localhost client (%s) is already initialized", exported.LocalhostClientID)
	}

	clientStore.Set(host.ClientStateKey(), clienttypes.MustMarshalClientState(cdc, &cs))

	return nil
}

// GetTimestampAtHeight returns the current block time retrieved from the application context.
// The localhost client does not store consensus states and thus cannot provide
// a timestamp for a past height.
func (ClientState) GetTimestampAtHeight(ctx sdk.Context, _ sdk.KVStore, _ codec.BinaryCodec, _ exported.Height) (uint64, error) {
	return uint64(ctx.BlockTime().UnixNano()), nil
}

// VerifyMembership is a generic proof verification method which verifies the existence of a given key and value within the IBC store.
// The caller is expected to construct the full CommitmentPath from a CommitmentPrefix and a standardized path (as defined in ICS 24).
// The caller must provide the full IBC store, not a client prefixed store, since the verified
// paths belong to arbitrary other modules on the same ledger.
//
// The proof, height and delay period parameters are accepted for interface
// conformance only. There is no cross-chain finality lag to enforce, so none
// of them gate the result.
func (cs ClientState) VerifyMembership(
	ctx sdk.Context,
	store sdk.KVStore,
	cdc codec.BinaryCodec,
	height exported.Height,
	delayTimePeriod uint64,
	delayBlockPeriod uint64,
	proof []byte,
	path exported.Path,
	value []byte,
) error {
	merklePath, ok := path.(commitmenttypes.MerklePath)
	if !ok {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidType, "expected %T, got %T", commitmenttypes.MerklePath{}, path)
	}

	if len(merklePath.KeyPath) != 2 {
		return errorsmod.Wrapf(host.ErrInvalidPath, "path must be of length 2: %s", merklePath.KeyPath)
	}

	// The commitment prefix (eg: "ibc") is stripped before any lookup since the
	// underlying store is addressed without it.
	key, err := commitmenttypes.RemovePrefix(commitmentPrefix(), merklePath)
	if err != nil {
		return err
	}

	bz := store.Get([]byte(key.KeyPath[0]))
	if bz == nil {
		return errorsmod.Wrapf(clienttypes.ErrFailedMembershipVerification, "value not found for path %s", path)
	}

	if !bytes.Equal(bz, value) {
		return errorsmod.Wrapf(clienttypes.ErrFailedMembershipVerification, "value provided does not equal value stored at path: %s", path)
	}

	return nil
}

// VerifyNonMembership is a generic proof verification method which verifies the absence of a given CommitmentPath within the IBC store.
// The caller is expected to construct the full CommitmentPath from a CommitmentPrefix and a standardized path (as defined in ICS 24).
// The caller must provide the full IBC store.
func (cs ClientState) VerifyNonMembership(
	ctx sdk.Context,
	store sdk.KVStore,
	cdc codec.BinaryCodec,
	height exported.Height,
	delayTimePeriod uint64,
	delayBlockPeriod uint64,
	proof []byte,
	path exported.Path,
) error {
	merklePath, ok := path.(commitmenttypes.MerklePath)
	if !ok {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidType, "expected %T, got %T", commitmenttypes.MerklePath{}, path)
	}

	if len(merklePath.KeyPath) != 2 {
		return errorsmod.Wrapf(host.ErrInvalidPath, "path must be of length 2: %s", merklePath.KeyPath)
	}

	key, err := commitmenttypes.RemovePrefix(commitmentPrefix(), merklePath)
	if err != nil {
		return err
	}

	if store.Has([]byte(key.KeyPath[0])) {
		return errorsmod.Wrapf(clienttypes.ErrFailedNonMembershipVerification, "value found for path %s", path)
	}

	return nil
}

// VerifyClientMessage is unsupported by the 09-localhost client type and returns an error.
// The loopback client never trusts a remote commitment root, so no client
// message can ever be verified; reaching this method signals an invariant
// violation in the caller.
func (ClientState) VerifyClientMessage(_ sdk.Context, _ codec.BinaryCodec, _ sdk.KVStore, _ exported.ClientMessage) error {
	return errorsmod.Wrap(clienttypes.ErrUpdateClientFailed, "client message verification is unsupported by the localhost client")
}

// CheckForMisbehaviour is unsupported by the 09-localhost client type and performs a no-op, returning false.
func (ClientState) CheckForMisbehaviour(_ sdk.Context, _ codec.BinaryCodec, _ sdk.KVStore, _ exported.ClientMessage) bool {
	return false
}

// UpdateStateOnMisbehaviour is unsupported by the 09-localhost client type and performs a no-op.
func (ClientState) UpdateStateOnMisbehaviour(_ sdk.Context, _ codec.BinaryCodec, _ sdk.KVStore, _ exported.ClientMessage) {
	// no-op
}

// UpdateState overwrites the stored latest height with the current height of
// the local ledger. The client message is ignored entirely; the self height
// obtained from the context is the only authoritative source.
func (cs ClientState) UpdateState(ctx sdk.Context, cdc codec.BinaryCodec, clientStore sdk.KVStore, _ exported.ClientMessage) []exported.Height {
	height := clienttypes.GetSelfHeight(ctx)

	clientState := NewClientState(height)
	clientStore.Set(host.ClientStateKey(), clienttypes.MustMarshalClientState(cdc, clientState))

	return []exported.Height{height}
}

// commitmentPrefix returns the commitment prefix of the host: the IBC module
// store key. It must exactly mirror how a real proof for the same path would
// have been addressed, so application code written against the general IBC
// path scheme works unmodified against a loopback counterparty.
func commitmentPrefix() commitmenttypes.MerklePrefix {
	return commitmenttypes.NewMerklePrefix([]byte(exported.StoreKey))
}
