package host

import "fmt"

const (
	// KeyConnectionPrefix is the store key prefix for connection ends
	KeyConnectionPrefix = "connections"

	// KeyNextConnectionSequence is the key used to store the next connection
	// sequence in the keeper.
	KeyNextConnectionSequence = "nextConnectionSequence"
)

// ConnectionPath returns the store path for a particular connection
func ConnectionPath(connectionID string) string {
	return fmt.Sprintf("%s/%s", KeyConnectionPrefix, connectionID)
}

// ConnectionKey returns the store key for a particular connection
func ConnectionKey(connectionID string) []byte {
	return []byte(ConnectionPath(connectionID))
}
