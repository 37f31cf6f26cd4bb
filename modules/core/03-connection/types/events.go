package types

import (
	"fmt"

	"github.com/ibc-labs/loopback/modules/core/exported"
)

// IBC connection events
const (
	AttributeKeyConnectionID             = "connection_id"
	AttributeKeyClientID                 = "client_id"
	AttributeKeyCounterpartyClientID     = "counterparty_client_id"
	AttributeKeyCounterpartyConnectionID = "counterparty_connection_id"
)

// IBC connection events vars
var (
	EventTypeConnectionCreated = "connection_created"

	AttributeValueCategory = fmt.Sprintf("%s_%s", exported.ModuleName, SubModuleName)
)
