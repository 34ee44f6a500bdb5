package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/baseballlmb/rostermatch/internal/normalize"
)

// PostgresProvider pulls the canonical batter and pitcher universe from the
// trackman warehouse, filtered to the configured seasons.
type PostgresProvider struct {
	URL     string
	Seasons []string
}

const distinctNamesQuery = `
SELECT name, role FROM (
	SELECT DISTINCT batter_name AS name, 'batter' AS role
	FROM trackman_pitches
	WHERE season = ANY($1) AND batter_name IS NOT NULL
	UNION ALL
	SELECT DISTINCT pitcher_name AS name, 'pitcher' AS role
	FROM trackman_pitches
	WHERE season = ANY($1) AND pitcher_name IS NOT NULL
) names
ORDER BY name`

// Names connects, runs one distinct-names query for both roles and cleans
// every name into the canonical display form. Duplicates that collapse to
// the same cleaned form are dropped within each role.
func (p *PostgresProvider) Names(ctx context.Context) (*Set, error) {
	conn, err := pgx.Connect(ctx, p.URL)
	if err != nil {
		return nil, fmt.Errorf("connect reference database: %w", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	rows, err := conn.Query(ctx, distinctNamesQuery, p.Seasons)
	if err != nil {
		return nil, fmt.Errorf("query reference names: %w", err)
	}
	defer rows.Close()

	set := &Set{}
	seen := map[string]map[string]bool{
		"batter":  {},
		"pitcher": {},
	}
	for rows.Next() {
		var name, role string
		if err := rows.Scan(&name, &role); err != nil {
			return nil, fmt.Errorf("scan reference name: %w", err)
		}
		clean := normalize.CleanDisplayName(name)
		if clean == "" || clean == normalize.Placeholder || seen[role][clean] {
			continue
		}
		seen[role][clean] = true
		switch role {
		case "batter":
			set.Batters = append(set.Batters, clean)
		case "pitcher":
			set.Pitchers = append(set.Pitchers, clean)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reference names: %w", err)
	}
	if set.Empty() {
		return nil, fmt.Errorf("no reference names for seasons %v", p.Seasons)
	}

	return set, nil
}

// Source identifies the Postgres provider. The connection URL is omitted to
// keep credentials out of cache keys and logs; the seasons disambiguate.
func (p *PostgresProvider) Source() string {
	return fmt.Sprintf("postgres:%v", p.Seasons)
}
