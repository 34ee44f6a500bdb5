package model

// Spanish JSON keys below are the wire contract consumed by the reporting
// backend; do not rename them.

// MatchResult is the outcome of reconciling one roster name against the
// reference list. Matched is true iff Similarity >= threshold and a
// reference name was found.
type MatchResult struct {
	RosterName   string  `json:"nombre_roster"`
	TrackmanName string  `json:"nombre_trackman,omitempty"`
	Matched      bool    `json:"coincidencia"`
	Similarity   float64 `json:"similitud"`
	Algorithm    string  `json:"algoritmo,omitempty"`
}

// MatchedPair is the compact matched entry exposed to report consumers.
type MatchedPair struct {
	Extracted string  `json:"extraido"`
	Canonical string  `json:"canonico"`
	Score     float64 `json:"score"`
}

// Partition keys for role-grouped match reports.
const (
	PartitionBatters  = "batters"
	PartitionPitchers = "pitchers"
	PartitionStaff    = "staff"
)

// RoleReport holds the match outcome for one role partition.
type RoleReport struct {
	Matched   []MatchedPair `json:"matched"`
	Unmatched []string      `json:"unmatched"`
	Results   []MatchResult `json:"coincidencias_trackman,omitempty"`
}

// FileReport is the complete result of processing one roster document.
// Failures are carried in Error; a report is produced for every input file.
type FileReport struct {
	File         string                 `json:"file"`
	Error        string                 `json:"error,omitempty"`
	Warnings     []string               `json:"warnings,omitempty"`
	Preview      []RosterRecord         `json:"preview,omitempty"`
	TotalPlayers int                    `json:"total_jugadores"`
	Positions    map[string]int         `json:"posiciones,omitempty"`
	Roles        map[string]*RoleReport `json:"roles,omitempty"`
	Totals       map[string]int         `json:"totals,omitempty"`
	Quality      Quality                `json:"quality"`
}

// Failed reports whether processing produced no usable result.
func (r *FileReport) Failed() bool {
	return r.Error != ""
}

// Quality summarizes how trustworthy the match results are.
type Quality struct {
	MatchRate  float64  `json:"match_rate"`             // matched / total, 0-1
	Confidence string   `json:"confidence"`             // "low", "medium", "high"
	Degraded   bool     `json:"degraded"`               // reference fallback in effect
	Signals    []Signal `json:"signals,omitempty"`
}

// Signal is a diagnostic annotation attached to a report.
type Signal struct {
	Type        SignalType             `json:"type"`
	Severity    SignalSeverity         `json:"severity"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// SignalType classifies the diagnostic signal.
type SignalType string

const (
	SignalDegradedReference SignalType = "degraded_reference" // cached or embedded names used
	SignalNoStructure       SignalType = "no_structure"       // flat-scan fallback used
	SignalLowMatchRate      SignalType = "low_match_rate"     // many names unreconciled
	SignalEmptySection      SignalType = "empty_section"      // a detected section yielded no names
)

// SignalSeverity indicates the importance of the signal.
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)
