package sqlite

import (
	"fmt"
	"math"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// topLocationCount caps the location histogram.
const topLocationCount = 10

// Analytics computes the summary statistics: total client count,
// distinct non-empty locations, and the top locations by client count
// with their share of the total rounded to one decimal.
func (s *Store) Analytics() (types.Analytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return types.Analytics{}, err
	}

	var out types.Analytics
	if err := s.db.QueryRow("SELECT COUNT(*) FROM clients").Scan(&out.Total); err != nil {
		return types.Analytics{}, fmt.Errorf("counting clients: %w", err)
	}
	if err := s.db.QueryRow(
		`SELECT COUNT(DISTINCT location) FROM clients
		 WHERE location IS NOT NULL AND location != ''`).Scan(&out.UniqueLocations); err != nil {
		return types.Analytics{}, fmt.Errorf("counting locations: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT location, COUNT(*) AS n FROM clients
		 WHERE location IS NOT NULL AND location != ''
		 GROUP BY location ORDER BY n DESC LIMIT ?`, topLocationCount)
	if err != nil {
		return types.Analytics{}, fmt.Errorf("querying location histogram: %w", err)
	}
	defer rows.Close()

	out.Locations = []types.LocationStat{}
	for rows.Next() {
		var stat types.LocationStat
		if err := rows.Scan(&stat.Name, &stat.Count); err != nil {
			return types.Analytics{}, fmt.Errorf("scanning location stat: %w", err)
		}
		if out.Total > 0 {
			stat.Percentage = math.Round(float64(stat.Count)/float64(out.Total)*1000) / 10
		}
		out.Locations = append(out.Locations, stat)
	}
	if err := rows.Err(); err != nil {
		return types.Analytics{}, fmt.Errorf("querying location histogram: %w", err)
	}

	out.TopLocation = "N/A"
	if len(out.Locations) > 0 {
		out.TopLocation = out.Locations[0].Name
	}
	return out, nil
}
