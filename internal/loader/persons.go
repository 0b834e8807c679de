package loader

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/legislature-tools/legistats/internal/dates"
	"github.com/legislature-tools/legistats/internal/model"
)

// Roster fields consumed into typed Person fields. Everything else is
// preserved verbatim under Extras.
var personFields = map[string]struct{}{
	"id":           {},
	"person_id":    {},
	"name":         {},
	"given_names":  {},
	"given_name":   {},
	"family_names": {},
	"family_name":  {},
	"memberships":  {},
}

// Membership kinds in the all-members roster shape, in output order.
var membershipKinds = []struct {
	classification string
	key            string
}{
	{model.ClassificationGroup, "groups"},
	{model.ClassificationCandidateList, "candidate_list"},
	{model.ClassificationConstituency, "constituency"},
}

// CSV cells holding JSON-encoded values in the all-members format.
var jsonEncodedCells = map[string]struct{}{
	"memberships": {},
	"identifiers": {},
	"sources":     {},
	"other_names": {},
}

// Persons loads the member roster from an all-members JSON or CSV file.
func Persons(path string) ([]model.Person, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open persons file: %w", err)
	}
	defer f.Close()

	var raw []map[string]any
	switch format {
	case formatCSV:
		rows, err := readCSVRows(f)
		if err != nil {
			return nil, fmt.Errorf("persons file %s: %w", path, err)
		}
		raw = make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			entry := make(map[string]any, len(row))
			for field, cell := range row {
				if cell == "" {
					continue
				}
				if _, encoded := jsonEncodedCells[field]; encoded {
					var decoded any
					if err := json.Unmarshal([]byte(cell), &decoded); err == nil {
						entry[field] = decoded
					}
					continue
				}
				entry[field] = cell
			}
			raw = append(raw, entry)
		}
	case formatJSON:
		if err := json.NewDecoder(f).Decode(&raw); err != nil {
			return nil, fmt.Errorf("persons file %s: %w", path, err)
		}
	}

	persons := make([]model.Person, 0, len(raw))
	for i, entry := range raw {
		person := normalizePerson(entry)
		if err := validate.Struct(&person); err != nil {
			return nil, fmt.Errorf("persons file %s row %d: %w", path, i, err)
		}
		persons = append(persons, person)
	}

	slog.Debug("Loaded persons", "path", path, "rows", len(persons))
	return persons, nil
}

func normalizePerson(raw map[string]any) model.Person {
	person := model.Person{
		ID:            firstString(raw, "id", "person_id"),
		Name:          asString(raw["name"]),
		GivenNames:    nameList(raw, "given_names", "given_name"),
		FamilyNames:   nameList(raw, "family_names", "family_name"),
		Organizations: organizationsOf(raw["memberships"]),
	}

	for field, value := range raw {
		if _, known := personFields[field]; known {
			continue
		}
		if person.Extras == nil {
			person.Extras = make(map[string]any)
		}
		person.Extras[field] = value
	}

	return person
}

// organizationsOf flattens the memberships object (keyed by groups,
// candidate_list, constituency) into a single organizations list.
func organizationsOf(value any) []model.Organization {
	memberships, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	var orgs []model.Organization
	for _, kind := range membershipKinds {
		entries, ok := memberships[kind.key].([]any)
		if !ok {
			continue
		}
		for _, e := range entries {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			id := asString(entry["id"])
			if id == "" {
				continue
			}
			orgs = append(orgs, model.Organization{
				ID:             id,
				Name:           asString(entry["name"]),
				Classification: kind.classification,
				Since:          dayPrefix(asString(entry["start_date"])),
				Until:          dayPrefix(asString(entry["end_date"])),
			})
		}
	}
	return orgs
}

func dayPrefix(s string) string {
	if len(s) > len(dates.DayLayout) {
		return s[:len(dates.DayLayout)]
	}
	return s
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

func firstString(raw map[string]any, fields ...string) string {
	for _, field := range fields {
		if s := asString(raw[field]); s != "" {
			return s
		}
	}
	return ""
}

// nameList reads a plural name field (list, or comma-separated string)
// falling back to its singular variant.
func nameList(raw map[string]any, plural, singular string) []string {
	switch value := raw[plural].(type) {
	case []any:
		var names []string
		for _, v := range value {
			if s := strings.TrimSpace(asString(v)); s != "" {
				names = append(names, s)
			}
		}
		return names
	case string:
		return splitNames(value)
	}
	if s := asString(raw[singular]); s != "" {
		return []string{s}
	}
	return nil
}

func splitNames(value string) []string {
	var names []string
	for _, part := range strings.Split(value, ",") {
		if s := strings.TrimSpace(part); s != "" {
			names = append(names, s)
		}
	}
	return names
}
