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

func govityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "govity",
		Short: "Compute per-member government-alignment rates",
		Long: `Compute how often each member, when present, voted along with the
government's direction. The definition names the government's groups or
individual members; --since/--until override the definition's own date
bounds.`,
		RunE: runGovity,
	}

	cmd.Flags().String("definition", "", "path to the govity-definition JSON")
	cmd.Flags().String("votes", "", "path to the votes CSV or JSON")
	cmd.Flags().String("vote-events", "", "path to the vote-events JSON or CSV")
	cmd.Flags().String("persons", "", "path to the all-members JSON or CSV")
	cmd.Flags().String("output", "", "path to write the govity report JSON")
	cmd.Flags().String("since", "", "ignore vote events before this date (YYYY-MM-DD)")
	cmd.Flags().String("until", "", "ignore vote events after this date (YYYY-MM-DD)")

	for _, flag := range []string{"definition", "votes", "vote-events", "persons", "output"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func runGovity(cmd *cobra.Command, _ []string) error {
	definitionPath, _ := cmd.Flags().GetString("definition")
	votesPath, _ := cmd.Flags().GetString("votes")
	eventsPath, _ := cmd.Flags().GetString("vote-events")
	personsPath, _ := cmd.Flags().GetString("persons")
	outputPath, _ := cmd.Flags().GetString("output")
	sinceValue, _ := cmd.Flags().GetString("since")
	untilValue, _ := cmd.Flags().GetString("until")

	since, err := parseDateFlag("since", sinceValue)
	if err != nil {
		return err
	}
	until, err := parseDateFlag("until", untilValue)
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Computing govity..."))

	definition, err := loader.GovityDefinition(definitionPath)
	if err != nil {
		return common.NewUserError("failed to load the govity definition", err)
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

	cfg := analysis.GovityConfig{
		Window:   dates.Range{Since: since, Until: until},
		Progress: newProgress("Aggregating govity..."),
	}
	records, err := analysis.Govity(cfg, definition, votes, events, persons)
	if err != nil {
		return common.NewUserError("govity aggregation failed", err)
	}

	if err := writeReport(outputPath, records); err != nil {
		return common.NewUserError("failed to write the govity report", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Wrote %d govity records", len(records))), "output", outputPath)
	return nil
}
