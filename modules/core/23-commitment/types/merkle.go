package types

import (
	"net/url"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/ibc-labs/loopback/modules/core/exported"
)

var (
	_ exported.Prefix = (*MerklePrefix)(nil)
	_ exported.Path   = (*MerklePath)(nil)
)

// NewMerklePrefix constructs new MerklePrefix instance
func NewMerklePrefix(keyPrefix []byte) MerklePrefix {
	return MerklePrefix{
		KeyPrefix: keyPrefix,
	}
}

// Bytes returns the key prefix bytes
func (mp MerklePrefix) Bytes() []byte {
	return mp.KeyPrefix
}

// Empty returns true if the prefix is empty
func (mp MerklePrefix) Empty() bool {
	return len(mp.Bytes()) == 0
}

// NewMerklePath creates a new MerklePath instance
// The keys must be passed in from root-to-leaf order
func NewMerklePath(keyPath ...string) MerklePath {
	return MerklePath{
		KeyPath: keyPath,
	}
}

// String implements fmt.Stringer.
// This represents the path in the same way the tendermint KeyPath will
// represent a key path. The backslashes partition the key path into
// the respective stores they belong to.
func (mp MerklePath) String() string {
	pathStr := ""
	for _, k := range mp.KeyPath {
		pathStr += "/" + url.PathEscape(k)
	}
	return pathStr
}

// Pretty returns the unescaped path of the URL string.
// This function will unescape any backslash within a particular store key.
// This makes the keypath more human-readable while removing information
// about the exact partitions in the key path.
func (mp MerklePath) Pretty() string {
	path, err := url.PathUnescape(mp.String())
	if err != nil {
		panic(err)
	}
	return path
}

// GetKey will return a byte representation of the key
// after URL escaping the key element
func (mp MerklePath) GetKey(i uint64) ([]byte, error) {
	if i >= uint64(len(mp.KeyPath)) {
		return nil, errorsmod.Wrapf(ErrInvalidMerklePath, "index out of range. %d (index) >= %d (len)", i, len(mp.KeyPath))
	}
	key, err := url.PathUnescape(mp.KeyPath[i])
	if err != nil {
		return nil, err
	}
	return []byte(key), nil
}

// Empty returns true if the path is empty
func (mp MerklePath) Empty() bool {
	return len(mp.KeyPath) == 0
}

// ApplyPrefix constructs a new commitment path from the arguments. It prepends the prefix key
// with the given path.
func ApplyPrefix(prefix exported.Prefix, path MerklePath) (MerklePath, error) {
	if prefix == nil || prefix.Empty() {
		return MerklePath{}, errorsmod.Wrap(ErrInvalidPrefix, "prefix can't be empty")
	}
	return NewMerklePath(append([]string{string(prefix.Bytes())}, path.KeyPath...)...), nil
}

// RemovePrefix returns the commitment path with the provided prefix stripped
// from its leading element. It errors if the path does not begin with the
// prefix, since the underlying store is addressed without it.
func RemovePrefix(prefix exported.Prefix, path MerklePath) (MerklePath, error) {
	if prefix == nil || prefix.Empty() {
		return MerklePath{}, errorsmod.Wrap(ErrInvalidPrefix, "prefix can't be empty")
	}
	if path.Empty() {
		return MerklePath{}, errorsmod.Wrap(ErrInvalidMerklePath, "path can't be empty")
	}
	if path.KeyPath[0] != string(prefix.Bytes()) {
		return MerklePath{}, errorsmod.Wrapf(ErrInvalidMerklePath, "path %s does not begin with prefix %s", path.Pretty(), string(prefix.Bytes()))
	}
	return NewMerklePath(path.KeyPath[1:]...), nil
}

// TrimPrefix is a helper over RemovePrefix operating on raw string paths
// separated by "/". For prefix P and path "P/x/y" it yields "x/y".
func TrimPrefix(prefix string, path string) (string, error) {
	if !strings.HasPrefix(path, prefix+"/") {
		return "", errorsmod.Wrapf(ErrInvalidMerklePath, "path %s does not begin with prefix %s", path, prefix)
	}
	return strings.TrimPrefix(path, prefix+"/"), nil
}
