package types

// NewClient is one staged client row ready for insertion: the promoted
// columns plus the full original row as an extra-data JSON object.
type NewClient struct {
	BusinessName string
	Location     string
	Phone        string
	AnyDesk      string
	SourceFile   string
	ExtraData    string
}
