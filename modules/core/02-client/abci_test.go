package client_test

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	client "github.com/ibc-labs/loopback/modules/core/02-client"
	"github.com/ibc-labs/loopback/modules/core/02-client/keeper"
	"github.com/ibc-labs/loopback/modules/core/02-client/types"
	"github.com/ibc-labs/loopback/modules/core/exported"
	localhost "github.com/ibc-labs/loopback/modules/light-clients/09-localhost"
)

type ClientTestSuite struct {
	suite.Suite

	ctx    sdk.Context
	keeper keeper.Keeper
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (suite *ClientTestSuite) SetupTest() {
	key := storetypes.NewKVStoreKey(exported.StoreKey)
	tkey := storetypes.NewTransientStoreKey("transient_test")
	suite.ctx = testutil.DefaultContext(key, tkey).WithChainID("testchain-1").WithBlockHeight(10)

	registry := codectypes.NewInterfaceRegistry()
	types.RegisterInterfaces(registry)
	localhost.RegisterInterfaces(registry)

	suite.keeper = keeper.NewKeeper(codec.NewProtoCodec(registry), key)
}

func (suite *ClientTestSuite) TestBeginBlocker() {
	// without a loopback client the begin blocker is a no-op
	client.BeginBlocker(suite.ctx, suite.keeper)
	suite.Require().False(suite.keeper.HasClient(suite.ctx, exported.LocalhostClientID))

	suite.Require().NoError(suite.keeper.CreateLocalhostClient(suite.ctx))

	for i := int64(1); i <= 5; i++ {
		suite.ctx = suite.ctx.WithBlockHeight(10 + i)

		client.BeginBlocker(suite.ctx, suite.keeper)

		clientState, found := suite.keeper.GetClientState(suite.ctx, exported.LocalhostClientID)
		suite.Require().True(found)
		suite.Require().Equal(types.NewHeight(1, uint64(10+i)), clientState.GetLatestHeight())
	}
}
