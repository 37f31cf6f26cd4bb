package types

import (
	"fmt"

	"github.com/ibc-labs/loopback/modules/core/exported"
)

// IBC client events
const (
	AttributeKeyClientID         = "client_id"
	AttributeKeyClientType       = "client_type"
	AttributeKeyConsensusHeights = "consensus_heights"
)

// IBC client events vars
var (
	EventTypeCreateClient          = "create_client"
	EventTypeUpdateClient          = "update_client"
	EventTypeSubmitMisbehaviour    = "client_misbehaviour"
	EventTypeUpdateClientProposal  = "update_client_proposal"

	AttributeValueCategory = fmt.Sprintf("%s_%s", exported.ModuleName, SubModuleName)
)
