package replay

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// ActionRecord is one applied action and the host frame it happened on
type ActionRecord struct {
	F int    `json:"f"` // Frame number
	A string `json:"a"` // Action code
}

// Recording contains all data needed to replay a session
type Recording struct {
	Version   string         `json:"version"`
	ID        string         `json:"id"`
	Seed      uint64         `json:"seed"`
	StartTime string         `json:"startTime"`
	Actions   []ActionRecord `json:"actions"`
}
