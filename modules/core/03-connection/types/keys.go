package types

import (
	"fmt"
	"regexp"

	errorsmod "cosmossdk.io/errors"

	host "github.com/ibc-labs/loopback/modules/core/24-host"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

const (
	// SubModuleName defines the connection name
	SubModuleName = "connection"

	// StoreKey is the store key string for connections
	StoreKey = SubModuleName

	// ConnectionPrefix is the prefix used when creating a connection identifier
	ConnectionPrefix = "connection-"
)

// FormatConnectionIdentifier returns the connection identifier with the
// sequence appended.
// A connection identifier is in the format: `connection-{N}`
func FormatConnectionIdentifier(sequence uint64) string {
	return fmt.Sprintf("%s%d", ConnectionPrefix, sequence)
}

// IsConnectionIDFormat checks if a connectionID is in the format required on
// the SDK for parsing connection identifiers. The connection identifier must
// be in the form: `connection-{N}`
var IsConnectionIDFormat = regexp.MustCompile(`^connection-[0-9]{1,20}$`).MatchString

// IsValidConnectionID checks if the connection identifier is valid and can be
// parsed into the connection identifier format.
func IsValidConnectionID(connectionID string) bool {
	_, err := ParseConnectionSequence(connectionID)
	return err == nil
}

// ParseConnectionSequence parses the connection sequence from the connection identifier
func ParseConnectionSequence(connectionID string) (uint64, error) {
	if !IsConnectionIDFormat(connectionID) {
		return 0, errorsmod.Wrapf(host.ErrInvalidID, "connection identifier %s is not in the format: `connection-{N}`", connectionID)
	}

	sequence, err := host.ParseIdentifier(connectionID, ConnectionPrefix)
	if err != nil {
		return 0, errorsmod.Wrap(err, "invalid connection identifier")
	}

	return sequence, nil
}

// ValidateConnectionID validates that the provided connection identifier is in
// the correct format and is not the reserved loopback identifier.
func ValidateConnectionID(connectionID string) error {
	if connectionID == exported.LocalhostConnectionID {
		return errorsmod.Wrapf(host.ErrInvalidID, "identifier %s is reserved for the sentinel localhost connection", connectionID)
	}
	if !IsValidConnectionID(connectionID) {
		return errorsmod.Wrapf(host.ErrInvalidID, "invalid connection identifier %s", connectionID)
	}
	return nil
}
