package host

import (
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// ParseIdentifier parses the sequence from the identifier using the provided prefix.
// This function does not need to be used by counterparty chains. SDK generated
// connection and channel identifiers are required to use this format.
func ParseIdentifier(identifier, prefix string) (uint64, error) {
	if !strings.HasPrefix(identifier, prefix) {
		return 0, errorsmod.Wrapf(ErrInvalidID, "identifier doesn't contain prefix `%s`", prefix)
	}

	splitStr := strings.Split(identifier, prefix)
	if len(splitStr) != 2 {
		return 0, errorsmod.Wrapf(ErrInvalidID, "identifier must be in format: `%s{N}`", prefix)
	}

	// sanity check
	if splitStr[0] != "" {
		return 0, errorsmod.Wrapf(ErrInvalidID, "identifier must begin with prefix %s", prefix)
	}

	sequence, err := strconv.ParseUint(splitStr[1], 10, 64)
	if err != nil {
		return 0, errorsmod.Wrap(err, "failed to parse identifier sequence")
	}
	return sequence, nil
}
