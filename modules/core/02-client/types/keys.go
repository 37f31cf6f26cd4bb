package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"

	host "github.com/ibc-labs/loopback/modules/core/24-host"
	"github.com/ibc-labs/loopback/modules/core/exported"
)

const (
	// SubModuleName defines the IBC client name
	SubModuleName string = "client"

	// KeyAllowedClientPrefix is the key prefix for storing client params
	KeyAllowedClientPrefix = "clientParams"
)

// FormatClientIdentifier returns the client identifier with the sequence appended.
// This is an SDK specific format not enforced by IBC protocol.
func FormatClientIdentifier(clientType string, sequence uint64) string {
	return fmt.Sprintf("%s-%d", clientType, sequence)
}

// IsClientIDFormat checks if a clientID is in the format required on the SDK for
// parsing client identifiers. The client identifier must be in the form: `{client-type}-{N}`
var IsClientIDFormat = regexp.MustCompile(`^\w+([\w-]*\w)?-[0-9]{1,20}$`).MatchString

// IsValidClientID checks if the clientID is valid and can be parsed into the client
// identifier format. The sentinel loopback client identifier is valid despite not
// being in the generated `{client-type}-{N}` form.
func IsValidClientID(clientID string) bool {
	if clientID == exported.LocalhostClientID {
		return true
	}
	_, _, err := ParseClientIdentifier(clientID)
	return err == nil
}

// ParseClientIdentifier parses the client type and sequence from the client identifier.
// The sentinel loopback client identifier maps to the 09-localhost client type with
// sequence zero; it is exempt from the generated identifier format.
func ParseClientIdentifier(clientID string) (string, uint64, error) {
	if clientID == exported.LocalhostClientID {
		return exported.Localhost, 0, nil
	}

	if !IsClientIDFormat(clientID) {
		return "", 0, errorsmod.Wrapf(host.ErrInvalidID, "invalid client identifier %s is not in format: `{client-type}-{N}`", clientID)
	}

	splitStr := strings.Split(clientID, "-")
	lastIndex := len(splitStr) - 1

	clientType := strings.Join(splitStr[:lastIndex], "-")
	if strings.TrimSpace(clientType) == "" {
		return "", 0, errorsmod.Wrap(host.ErrInvalidID, "client identifier must be in format: `{client-type}-{N}` and client type cannot be blank")
	}

	sequence, err := strconv.ParseUint(splitStr[lastIndex], 10, 64)
	if err != nil {
		return "", 0, errorsmod.Wrap(err, "failed to parse client identifier sequence")
	}

	return clientType, sequence, nil
}

// ValidateClientID validates the client identifier by ensuring that it conforms
// to the 24-host identifier format and that it is neither the reserved loopback
// identifier nor prefixed with the loopback client type. The generic creation
// path must never mint the sentinel identifier.
func ValidateClientID(clientID string) error {
	if clientID == exported.LocalhostClientID {
		return errorsmod.Wrapf(ErrInvalidClientIdentifier, "client identifier %s is reserved for the loopback client", clientID)
	}

	clientType, _, err := ParseClientIdentifier(clientID)
	if err != nil {
		return err
	}

	if clientType == exported.Localhost {
		return errorsmod.Wrapf(ErrInvalidClientIdentifier, "client type cannot be %s", exported.Localhost)
	}

	return host.ClientIdentifierValidator(clientID)
}
