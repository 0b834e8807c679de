package loader

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/legislature-tools/legistats/internal/model"
)

// Votes loads the votes table from a CSV or JSON file.
func Votes(path string) ([]model.Vote, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open votes file: %w", err)
	}
	defer f.Close()

	var votes []model.Vote
	switch format {
	case formatCSV:
		rows, err := readCSVRows(f)
		if err != nil {
			return nil, fmt.Errorf("votes file %s: %w", path, err)
		}
		votes = make([]model.Vote, 0, len(rows))
		for _, row := range rows {
			votes = append(votes, model.Vote{
				VoteEventID: row["vote_event_id"],
				PersonID:    row["voter_id"],
				Choice:      row["option"],
			})
		}
	case formatJSON:
		if err := json.NewDecoder(f).Decode(&votes); err != nil {
			return nil, fmt.Errorf("votes file %s: %w", path, err)
		}
	}

	for i := range votes {
		if err := validate.Struct(&votes[i]); err != nil {
			return nil, fmt.Errorf("votes file %s row %d: %w", path, i, err)
		}
	}

	slog.Debug("Loaded votes", "path", path, "rows", len(votes))
	return votes, nil
}

// VoteEvents loads the vote-events dataset from a JSON or CSV file.
func VoteEvents(path string) ([]model.VoteEvent, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vote-events file: %w", err)
	}
	defer f.Close()

	var events []model.VoteEvent
	switch format {
	case formatCSV:
		rows, err := readCSVRows(f)
		if err != nil {
			return nil, fmt.Errorf("vote-events file %s: %w", path, err)
		}
		events = make([]model.VoteEvent, 0, len(rows))
		for _, row := range rows {
			events = append(events, model.VoteEvent{
				ID:        row["id"],
				EventType: row["event_type"],
				Status:    row["status"],
				Date:      row["start_date"],
			})
		}
	case formatJSON:
		if err := json.NewDecoder(f).Decode(&events); err != nil {
			return nil, fmt.Errorf("vote-events file %s: %w", path, err)
		}
	}

	for i := range events {
		if err := validate.Struct(&events[i]); err != nil {
			return nil, fmt.Errorf("vote-events file %s row %d: %w", path, i, err)
		}
	}

	slog.Debug("Loaded vote events", "path", path, "rows", len(events))
	return events, nil
}
