package host

const (
	// SubModuleName defines the ICS 24 host
	SubModuleName = "host"
)
