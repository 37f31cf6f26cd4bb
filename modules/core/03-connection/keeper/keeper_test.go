package keeper_test

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/ibc-labs/loopback/modules/core/03-connection/keeper"
	"github.com/ibc-labs/loopback/modules/core/03-connection/types"
	commitmenttypes "github.com/ibc-labs/loopback/modules/core/23-commitment/types"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

type KeeperTestSuite struct {
	suite.Suite

	ctx    sdk.Context
	keeper keeper.Keeper
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) SetupTest() {
	key := storetypes.NewKVStoreKey(exported.StoreKey)
	tkey := storetypes.NewTransientStoreKey("transient_test")
	suite.ctx = testutil.DefaultContext(key, tkey).WithChainID("testchain-1").WithBlockHeight(10)

	suite.keeper = keeper.NewKeeper(codec.NewProtoCodec(codectypes.NewInterfaceRegistry()), key)
}

func (suite *KeeperTestSuite) TestGenerateConnectionIdentifier() {
	suite.Require().Equal("connection-0", suite.keeper.GenerateConnectionIdentifier(suite.ctx))
	suite.Require().Equal("connection-1", suite.keeper.GenerateConnectionIdentifier(suite.ctx))
	suite.Require().Equal(uint64(2), suite.keeper.GetNextConnectionSequence(suite.ctx))
}

func (suite *KeeperTestSuite) TestGetCommitmentPrefix() {
	prefix := suite.keeper.GetCommitmentPrefix()
	suite.Require().Equal([]byte(exported.StoreKey), prefix.Bytes())
}

func (suite *KeeperTestSuite) TestSetAndGetConnection() {
	_, found := suite.keeper.GetConnection(suite.ctx, "connection-0")
	suite.Require().False(found)

	counterparty := types.NewCounterparty("07-tendermint-0", "connection-7", commitmenttypes.NewMerklePrefix([]byte("ibc")))
	connection := types.NewConnectionEnd(types.OPEN, "07-tendermint-1", counterparty, 0)

	suite.keeper.SetConnection(suite.ctx, "connection-0", connection)

	stored, found := suite.keeper.GetConnection(suite.ctx, "connection-0")
	suite.Require().True(found)
	suite.Require().Equal(connection, stored)
	suite.Require().True(suite.keeper.HasConnection(suite.ctx, "connection-0"))
}

func (suite *KeeperTestSuite) TestAddConnection() {
	counterparty := types.NewCounterparty("07-tendermint-0", "", commitmenttypes.NewMerklePrefix([]byte("ibc")))
	connection := types.NewConnectionEnd(types.INIT, "07-tendermint-1", counterparty, 0)

	connectionID := suite.keeper.GenerateConnectionIdentifier(suite.ctx)
	suite.Require().NoError(suite.keeper.AddConnection(suite.ctx, connectionID, connection))

	// reusing the identifier must fail
	err := suite.keeper.AddConnection(suite.ctx, connectionID, connection)
	suite.Require().ErrorIs(err, types.ErrConnectionExists)

	// the sentinel identifier is reserved
	err = suite.keeper.AddConnection(suite.ctx, exported.LocalhostConnectionID, connection)
	suite.Require().Error(err)
	suite.Require().False(suite.keeper.HasConnection(suite.ctx, exported.LocalhostConnectionID))
}

func (suite *KeeperTestSuite) TestCreateSentinelLocalhostConnection() {
	suite.Require().NoError(suite.keeper.CreateSentinelLocalhostConnection(suite.ctx))

	connection, found := suite.keeper.GetConnection(suite.ctx, exported.LocalhostConnectionID)
	suite.Require().True(found)

	counterparty := types.NewCounterparty(exported.LocalhostClientID, exported.LocalhostConnectionID, commitmenttypes.NewMerklePrefix([]byte(exported.StoreKey)))
	expConnection := types.NewConnectionEnd(types.OPEN, exported.LocalhostClientID, counterparty, 0)
	suite.Require().Equal(expConnection, connection)

	// the sentinel connection may exist at most once
	err := suite.keeper.CreateSentinelLocalhostConnection(suite.ctx)
	suite.Require().ErrorIs(err, types.ErrConnectionExists)
}
