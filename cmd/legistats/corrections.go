package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/legislature-tools/legistats/internal/analysis"
	"github.com/legislature-tools/legistats/internal/cli"
	"github.com/legislature-tools/legistats/internal/common"
	"github.com/legislature-tools/legistats/internal/dates"
	"github.com/legislature-tools/legistats/internal/loader"
)

func correctionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corrections",
		Short: "Compute per-member vote-correction counts",
		Long: `Count announced voting corrections (zmatečné hlasování) and resulting
vote-event invalidations for every member of the roster.

Example:
  legistats corrections --objections objections.json \
    --votes votes.csv --vote-events vote_events.json \
    --persons all_members.json --output corrections.json \
    --since 2021-10-08`,
		RunE: runCorrections,
	}

	cmd.Flags().String("objections", "", "path to the vote-event-objections JSON")
	cmd.Flags().String("votes", "", "path to the votes CSV or JSON")
	cmd.Flags().String("vote-events", "", "path to the vote-events JSON or CSV")
	cmd.Flags().String("persons", "", "path to the all-members JSON or CSV")
	cmd.Flags().String("output", "", "path to write the corrections report JSON")
	cmd.Flags().String("since", "", "ignore vote events before this date (YYYY-MM-DD)")
	cmd.Flags().String("until", "", "ignore vote events after this date (YYYY-MM-DD)")

	for _, flag := range []string{"objections", "votes", "vote-events", "persons", "output"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func runCorrections(cmd *cobra.Command, _ []string) error {
	objectionsPath, _ := cmd.Flags().GetString("objections")
	votesPath, _ := cmd.Flags().GetString("votes")
	eventsPath, _ := cmd.Flags().GetString("vote-events")
	personsPath, _ := cmd.Flags().GetString("persons")
	outputPath, _ := cmd.Flags().GetString("output")
	sinceValue, _ := cmd.Flags().GetString("since")
	untilValue, _ := cmd.Flags().GetString("until")

	// Date filters are checked before any file is touched.
	since, err := parseDateFlag("since", sinceValue)
	if err != nil {
		return err
	}
	until, err := parseDateFlag("until", untilValue)
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Computing vote corrections..."))

	objections, err := loader.Objections(objectionsPath)
	if err != nil {
		return common.NewUserError("failed to load objections", err)
	}
	events, err := loader.VoteEvents(eventsPath)
	if err != nil {
		return common.NewUserError("failed to load vote events", err)
	}
	votes, err := loader.Votes(votesPath)
	if err != nil {
		return common.NewUserError("failed to load votes", err)
	}
	persons, err := loader.Persons(personsPath)
	if err != nil {
		return common.NewUserError("failed to load the member roster", err)
	}
	if len(persons) == 0 {
		slog.Warn(cli.FormatWarning("Member roster is empty; the report will have no records"))
	}

	cfg := analysis.CorrectionsConfig{
		Window:   dates.Range{Since: since, Until: until},
		Progress: newProgress("Aggregating corrections..."),
	}
	records, err := analysis.Corrections(cfg, objections, votes, events, persons)
	if err != nil {
		return common.NewUserError("corrections aggregation failed", err)
	}

	if err := writeReport(outputPath, records); err != nil {
		return common.NewUserError("failed to write the corrections report", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Wrote %d correction records", len(records))), "output", outputPath)
	return nil
}
