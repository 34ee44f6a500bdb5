package model

import "strings"

// SectionTitle is a structural marker delimiting a block of roster rows.
// Comparison is always done on the accent-stripped, lower-cased,
// trailing-punctuation-trimmed form, which is the form stored here.
type SectionTitle string

const (
	TitleCatchers    SectionTitle = "catchers"
	TitlePitchers    SectionTitle = "pitchers"
	TitleInfielders  SectionTitle = "infielders"
	TitleOutfielders SectionTitle = "outfielders"
	TitleStaff       SectionTitle = "cuerpo tecnico"
	TitleRoster      SectionTitle = "roster"

	// TitleUnknown marks blocks whose governing title could not be detected;
	// role derivation then falls back to the per-record position field.
	TitleUnknown SectionTitle = "unknown"
)

// RosterRecord is one extracted player row. IDs are sequential and 1-based
// within a single extraction run; records are immutable once produced.
type RosterRecord struct {
	ID       int          `json:"id"`
	RawName  string       `json:"raw_name"`
	Position string       `json:"position,omitempty"`
	Title    SectionTitle `json:"title"`
}

// Role classifies a roster record for reference-list selection.
type Role string

const (
	RolePitcher          Role = "Pitcher"
	RoleBatter           Role = "Batter"
	RoleBatterCatcher    Role = "Batter/catcher"
	RoleBatterInfielder  Role = "Batter/infielders"
	RoleBatterOutfielder Role = "Batter/outfielders"
	RoleStaff            Role = "Staff"
	RoleUnknown          Role = "Unknown"
)

// IsBatter reports whether the role matches against the batters reference
// list. Catchers, infielders and outfielders are all batter variants.
func (r Role) IsBatter() bool {
	return r == RoleBatter || strings.HasPrefix(string(r), "Batter/")
}
