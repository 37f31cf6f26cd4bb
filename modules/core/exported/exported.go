package exported

// ModuleName is the name of the IBC module
const ModuleName = "ibc"

// StoreKey is the string store representation. The commitment prefix of the
// host chain is derived from this value.
const StoreKey = ModuleName
