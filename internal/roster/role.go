package roster

import (
	"github.com/baseballlmb/rostermatch/internal/model"
	"github.com/baseballlmb/rostermatch/internal/normalize"
)

// TitleToRole maps a section title to its role. Total over the closed
// title vocabulary; anything else maps to Unknown, never an error.
func TitleToRole(title model.SectionTitle) model.Role {
	switch title {
	case model.TitlePitchers:
		return model.RolePitcher
	case model.TitleCatchers:
		return model.RoleBatterCatcher
	case model.TitleInfielders:
		return model.RoleBatterInfielder
	case model.TitleOutfielders:
		return model.RoleBatterOutfielder
	case model.TitleRoster:
		return model.RoleBatter
	case model.TitleStaff:
		return model.RoleStaff
	default:
		return model.RoleUnknown
	}
}

// positionTitles maps common position codes to section titles. Documents
// sometimes label sections explicitly and sometimes only tag rows with a
// position code; both paths converge on the same titles and roles.
var positionTitles = map[string]model.SectionTitle{
	"p":        model.TitlePitchers,
	"pit":      model.TitlePitchers,
	"pitcher":  model.TitlePitchers,
	"pitchers": model.TitlePitchers,
	"rhp":      model.TitlePitchers,
	"lhp":      model.TitlePitchers,

	"c":        model.TitleCatchers,
	"c1":       model.TitleCatchers,
	"catcher":  model.TitleCatchers,
	"catchers": model.TitleCatchers,

	"if":         model.TitleInfielders,
	"inf":        model.TitleInfielders,
	"infield":    model.TitleInfielders,
	"infielders": model.TitleInfielders,
	"1b":         model.TitleInfielders,
	"2b":         model.TitleInfielders,
	"3b":         model.TitleInfielders,
	"ss":         model.TitleInfielders,
	"1st base":   model.TitleInfielders,
	"2nd base":   model.TitleInfielders,
	"3rd base":   model.TitleInfielders,
	"shortstop":  model.TitleInfielders,

	"of":           model.TitleOutfielders,
	"outfield":     model.TitleOutfielders,
	"outfielders":  model.TitleOutfielders,
	"lf":           model.TitleOutfielders,
	"cf":           model.TitleOutfielders,
	"rf":           model.TitleOutfielders,
	"left field":   model.TitleOutfielders,
	"center field": model.TitleOutfielders,
	"right field":  model.TitleOutfielders,

	"coach":          model.TitleStaff,
	"coaches":        model.TitleStaff,
	"staff":          model.TitleStaff,
	"cuerpo tecnico": model.TitleStaff,
}

// PositionToTitle maps a free-text position code to a section title,
// case and accent insensitively. Unrecognized positions report false and
// the caller defaults to "roster".
func PositionToTitle(position string) (model.SectionTitle, bool) {
	if position == "" {
		return "", false
	}
	t, ok := positionTitles[normalize.Title(position)]
	return t, ok
}

// RecordRole derives the role for one record: the block title when known,
// otherwise the position field, defaulting to Batter. Pure function.
func RecordRole(rec model.RosterRecord) model.Role {
	if rec.Title != model.TitleUnknown && rec.Title != "" {
		return TitleToRole(rec.Title)
	}
	if title, ok := PositionToTitle(rec.Position); ok {
		return TitleToRole(title)
	}
	return model.RoleBatter
}
