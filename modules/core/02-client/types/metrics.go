package types

// Prometheus metric labels.
const (
	LabelClientType = "client_type"
	LabelClientID   = "client_id"
	LabelUpdateType = "update_type"
)
