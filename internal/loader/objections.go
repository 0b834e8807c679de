package loader

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/legislature-tools/legistats/internal/common"
	"github.com/legislature-tools/legistats/internal/model"
)

// Objection outcomes in the vote-event-objections feed.
const (
	objectionTypeCorrection = "vote_correction"
	outcomeAnnounced        = "announced"
	outcomeInvalidated      = "invalidated"
)

// rawObjection covers both feed shapes: the upstream one with a type and
// an outcome string, and the normalized one with explicit booleans.
type rawObjection struct {
	Type        string `json:"type"`
	VoteEventID string `json:"vote_event_id"`
	PersonID    string `json:"person_id"`
	RaisedByID  string `json:"raised_by_id"`
	Outcome     string `json:"outcome"`
	Announced   *bool  `json:"announced"`
	Invalidated *bool  `json:"invalidated"`
	Date        string `json:"date"`
}

// Objections loads vote-correction objections from a JSON file. Rows of
// other objection types and rows without an attributable person are
// skipped, mirroring the upstream feed semantics.
func Objections(path string) ([]model.Objection, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	if format != formatJSON {
		return nil, fmt.Errorf("%w: objections file %s must be JSON", common.ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open objections file: %w", err)
	}
	defer f.Close()

	var raw []rawObjection
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("objections file %s: %w", path, err)
	}

	objections := make([]model.Objection, 0, len(raw))
	skipped := 0
	for i, r := range raw {
		if r.Type != "" && r.Type != objectionTypeCorrection {
			skipped++
			continue
		}
		personID := r.PersonID
		if personID == "" {
			personID = r.RaisedByID
		}
		if personID == "" {
			slog.Warn("Skipping objection without person", "path", path, "row", i)
			skipped++
			continue
		}

		obj := model.Objection{
			VoteEventID: r.VoteEventID,
			PersonID:    personID,
			Announced:   r.Outcome == outcomeAnnounced,
			Invalidated: r.Outcome == outcomeInvalidated,
			Date:        r.Date,
		}
		if r.Announced != nil {
			obj.Announced = *r.Announced
		}
		if r.Invalidated != nil {
			obj.Invalidated = *r.Invalidated
		}
		if err := validate.Struct(&obj); err != nil {
			return nil, fmt.Errorf("objections file %s row %d: %w", path, i, err)
		}
		objections = append(objections, obj)
	}

	slog.Debug("Loaded objections", "path", path, "rows", len(objections), "skipped", skipped)
	return objections, nil
}
