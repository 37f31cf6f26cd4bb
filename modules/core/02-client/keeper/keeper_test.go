package keeper_test

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/ibc-labs/loopback/modules/core/02-client/keeper"
	"github.com/ibc-labs/loopback/modules/core/02-client/types"
	commitmenttypes "github.com/ibc-labs/loopback/modules/core/23-commitment/types"
	host "github.com/ibc-labs/loopback/modules/core/24-host"
	"github.com/ibc-labs/loopback/modules/core/exported"
	localhost "github.com/ibc-labs/loopback/modules/light-clients/09-localhost"
)

const chainID = "testchain-1"

type KeeperTestSuite struct {
	suite.Suite

	ctx      sdk.Context
	cdc      codec.BinaryCodec
	storeKey *storetypes.KVStoreKey
	keeper   keeper.Keeper
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) SetupTest() {
	suite.storeKey = storetypes.NewKVStoreKey(exported.StoreKey)
	tkey := storetypes.NewTransientStoreKey("transient_test")
	suite.ctx = testutil.DefaultContext(suite.storeKey, tkey).WithChainID(chainID).WithBlockHeight(10)

	registry := codectypes.NewInterfaceRegistry()
	types.RegisterInterfaces(registry)
	localhost.RegisterInterfaces(registry)
	suite.cdc = codec.NewProtoCodec(registry)

	suite.keeper = keeper.NewKeeper(suite.cdc, suite.storeKey)
}

func (suite *KeeperTestSuite) TestGenerateClientIdentifier() {
	clientID := suite.keeper.GenerateClientIdentifier(suite.ctx, "07-tendermint")
	suite.Require().Equal("07-tendermint-0", clientID)

	clientID = suite.keeper.GenerateClientIdentifier(suite.ctx, "07-tendermint")
	suite.Require().Equal("07-tendermint-1", clientID)

	suite.Require().Equal(uint64(2), suite.keeper.GetNextClientSequence(suite.ctx))
}

func (suite *KeeperTestSuite) TestCreateLocalhostClient() {
	err := suite.keeper.CreateLocalhostClient(suite.ctx)
	suite.Require().NoError(err)

	clientState, found := suite.keeper.GetClientState(suite.ctx, exported.LocalhostClientID)
	suite.Require().True(found)
	suite.Require().Equal(types.NewHeight(1, 10), clientState.GetLatestHeight())
	suite.Require().Equal(exported.Active, suite.keeper.GetClientStatus(suite.ctx, exported.LocalhostClientID))
}

func (suite *KeeperTestSuite) TestCreateLocalhostClientDuplicate() {
	suite.Require().NoError(suite.keeper.CreateLocalhostClient(suite.ctx))

	// the second provisioning must fail and leave the stored height untouched
	suite.ctx = suite.ctx.WithBlockHeight(42)
	err := suite.keeper.CreateLocalhostClient(suite.ctx)
	suite.Require().ErrorIs(err, types.ErrClientExists)

	clientState, found := suite.keeper.GetClientState(suite.ctx, exported.LocalhostClientID)
	suite.Require().True(found)
	suite.Require().Equal(types.NewHeight(1, 10), clientState.GetLatestHeight())
}

func (suite *KeeperTestSuite) TestCreateClientRejectsLocalhost() {
	clientState := localhost.NewClientState(types.GetSelfHeight(suite.ctx))

	clientID, err := suite.keeper.CreateClient(suite.ctx, clientState, nil)
	suite.Require().ErrorIs(err, types.ErrInvalidClientType)
	suite.Require().Empty(clientID)

	// no identifier may be consumed by the rejected creation
	suite.Require().Equal(uint64(0), suite.keeper.GetNextClientSequence(suite.ctx))
	suite.Require().False(suite.keeper.HasClient(suite.ctx, exported.LocalhostClientID))
}

func (suite *KeeperTestSuite) TestUpdateLocalhostClient() {
	suite.Require().NoError(suite.keeper.CreateLocalhostClient(suite.ctx))

	for _, height := range []int64{11, 12, 25} {
		suite.ctx = suite.ctx.WithBlockHeight(height)

		clientState, found := suite.keeper.GetClientState(suite.ctx, exported.LocalhostClientID)
		suite.Require().True(found)

		heights := suite.keeper.UpdateLocalhostClient(suite.ctx, clientState)
		suite.Require().Equal([]exported.Height{types.NewHeight(1, uint64(height))}, heights)

		clientState, found = suite.keeper.GetClientState(suite.ctx, exported.LocalhostClientID)
		suite.Require().True(found)
		suite.Require().Equal(types.NewHeight(1, uint64(height)), clientState.GetLatestHeight())
	}
}

func (suite *KeeperTestSuite) TestUpdateClientLocalhostRejected() {
	suite.Require().NoError(suite.keeper.CreateLocalhostClient(suite.ctx))

	// the client message path never applies to the loopback client
	err := suite.keeper.UpdateClient(suite.ctx, exported.LocalhostClientID, &localhost.Misbehaviour{})
	suite.Require().ErrorIs(err, types.ErrUpdateClientFailed)
}

func (suite *KeeperTestSuite) TestGetClientStatus() {
	suite.Require().Equal(exported.Unknown, suite.keeper.GetClientStatus(suite.ctx, exported.LocalhostClientID))

	suite.Require().NoError(suite.keeper.CreateLocalhostClient(suite.ctx))
	suite.Require().Equal(exported.Active, suite.keeper.GetClientStatus(suite.ctx, exported.LocalhostClientID))

	// removing the client type from the allowlist makes the status Unknown
	suite.keeper.SetParams(suite.ctx, types.NewParams("07-tendermint"))
	suite.Require().Equal(exported.Unknown, suite.keeper.GetClientStatus(suite.ctx, exported.LocalhostClientID))
}

func (suite *KeeperTestSuite) TestParams() {
	suite.Require().Equal(types.DefaultParams(), suite.keeper.GetParams(suite.ctx))

	params := types.NewParams("06-solomachine", "07-tendermint")
	suite.keeper.SetParams(suite.ctx, params)
	suite.Require().Equal(params, suite.keeper.GetParams(suite.ctx))
}

func (suite *KeeperTestSuite) TestVerifyMembership() {
	suite.Require().NoError(suite.keeper.CreateLocalhostClient(suite.ctx))

	connectionEnd := []byte("connection-end-bytes")
	suite.ctx.KVStore(suite.storeKey).Set(host.ConnectionKey("connection-5"), connectionEnd)

	merklePath, err := commitmenttypes.ApplyPrefix(
		commitmenttypes.NewMerklePrefix([]byte(exported.StoreKey)),
		commitmenttypes.NewMerklePath(host.ConnectionPath("connection-5")),
	)
	suite.Require().NoError(err)

	err = suite.keeper.VerifyMembership(suite.ctx, exported.LocalhostClientID, types.ZeroHeight(), 0, 0, localhost.SentinelProof, merklePath, connectionEnd)
	suite.Require().NoError(err)

	// a mismatched value must fail
	err = suite.keeper.VerifyMembership(suite.ctx, exported.LocalhostClientID, types.ZeroHeight(), 0, 0, localhost.SentinelProof, merklePath, []byte("different"))
	suite.Require().ErrorIs(err, types.ErrFailedMembershipVerification)

	// an unknown client must fail before any store access
	err = suite.keeper.VerifyMembership(suite.ctx, "07-tendermint-0", types.ZeroHeight(), 0, 0, localhost.SentinelProof, merklePath, connectionEnd)
	suite.Require().ErrorIs(err, types.ErrClientNotFound)
}

func (suite *KeeperTestSuite) TestVerifyNonMembership() {
	suite.Require().NoError(suite.keeper.CreateLocalhostClient(suite.ctx))

	merklePath, err := commitmenttypes.ApplyPrefix(
		commitmenttypes.NewMerklePrefix([]byte(exported.StoreKey)),
		commitmenttypes.NewMerklePath(host.ConnectionPath("connection-5")),
	)
	suite.Require().NoError(err)

	err = suite.keeper.VerifyNonMembership(suite.ctx, exported.LocalhostClientID, types.ZeroHeight(), 0, 0, localhost.SentinelProof, merklePath)
	suite.Require().NoError(err)

	suite.ctx.KVStore(suite.storeKey).Set(host.ConnectionKey("connection-5"), []byte("connection-end-bytes"))

	err = suite.keeper.VerifyNonMembership(suite.ctx, exported.LocalhostClientID, types.ZeroHeight(), 0, 0, localhost.SentinelProof, merklePath)
	suite.Require().ErrorIs(err, types.ErrFailedNonMembershipVerification)
}
