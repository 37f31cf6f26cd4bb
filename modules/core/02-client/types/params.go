package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ibc-labs/loopback/modules/core/exported"
)

// AllowAllClients is the value that permits all allowable client types
const AllowAllClients = "*"

// DefaultAllowedClients are the default clients for the AllowedClients parameter.
// By default it allows all client types.
var DefaultAllowedClients = []string{AllowAllClients}

// NewParams creates a new parameter configuration for the ibc client module
func NewParams(allowedClients ...string) Params {
	return Params{
		AllowedClients: allowedClients,
	}
}

// DefaultParams is the default parameter configuration for the ibc-client module.
func DefaultParams() Params {
	return NewParams(DefaultAllowedClients...)
}

// Validate all ibc-client module parameters
func (p Params) Validate() error {
	return validateClients(p.AllowedClients)
}

// IsAllowedClient checks if the given client type is registered on the allowlist.
func (p Params) IsAllowedClient(clientType string) bool {
	// Still need to check that the client type is not blank.
	if strings.TrimSpace(clientType) == "" {
		return false
	}

	// Check for allow all client wildcard
	// If exists then allow all type of clients
	if len(p.AllowedClients) == 1 && p.AllowedClients[0] == AllowAllClients {
		return true
	}

	return slices.Contains(p.AllowedClients, clientType)
}

// validateClients checks that the given clients are not blank and there are no duplicates.
// If AllowAllClients wildcard (*) is used, then there should no other client types in the allow list
func validateClients(clients []string) error {
	if slices.Contains(clients, AllowAllClients) && len(clients) > 1 {
		return fmt.Errorf("allow list must have only one element because the allow all clients wildcard (%s) is present", AllowAllClients)
	}

	for i, clientType := range clients {
		if strings.TrimSpace(clientType) == "" {
			return fmt.Errorf("client type %d cannot be blank", i)
		}
	}

	return nil
}

// IsLocalhostAllowed returns true if the loopback client type is present in
// the allow list. The loopback client is provisioned outside the generic
// creation path, but the host may still disable its use through params.
func (p Params) IsLocalhostAllowed() bool {
	return p.IsAllowedClient(exported.Localhost)
}
