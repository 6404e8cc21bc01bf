package ingest

import "strings"

// columnTarget binds one promoted column to its header keywords,
// highest priority first. Targets are resolved in slice order so a
// header matching both a location and a name keyword lands on location.
type columnTarget struct {
	target   string
	keywords []string
}

var columnTargets = []columnTarget{
	{"location", []string{"עיר", "city", "ישוב", "יישוב", "מיקום", "location", "כתובת", "address", "מקום"}},
	{"anydesk", []string{"anydesk", "אנידסק"}},
	{"phone", []string{"phone", "mobile", "cell", "tel", "טלפון", "נייד", "פלאפון"}},
	{"business_name", []string{"שם עסק", "שם העסק", "עסק", "business", "company", "name", "שם", "לקוח", "client"}},
}

// mapColumns resolves which header index feeds each promoted column.
// A header is consumed by at most one target: once claimed for
// location it cannot also serve as the name column.
func mapColumns(headers []string) map[int]string {
	used := make(map[int]bool, len(columnTargets))
	mapped := make(map[int]string, len(columnTargets))

	for _, ct := range columnTargets {
		found := -1
		for _, kw := range ct.keywords {
			for i, h := range headers {
				if used[i] {
					continue
				}
				if strings.Contains(strings.ToLower(h), kw) {
					found = i
					break
				}
			}
			if found >= 0 {
				break
			}
		}
		if found >= 0 {
			used[found] = true
			mapped[found] = ct.target
		}
	}
	return mapped
}

// NormalizeCity canonicalizes city spellings. The Baqa variants all
// collapse to the full name so location grouping stays consistent.
func NormalizeCity(city string) string {
	city = strings.TrimSpace(city)
	if strings.Contains(city, "באקה") {
		return "באקה אל גרבייה"
	}
	return city
}
