package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/legislature-tools/legistats/internal/analysis"
	"github.com/legislature-tools/legistats/internal/cli"
	"github.com/legislature-tools/legistats/internal/common"
	"github.com/legislature-tools/legistats/internal/loader"
)

func attendanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Compute per-member attendance from vote data",
		Long: `Compute attendance counters (present, absent, excused) for every member
of the roster, classifying vote events through an attendance definition.

Example:
  legistats attendance --definition attendance_definition.json \
    --votes votes.csv --vote-events vote_events.json \
    --persons all_members.json --output attendance.json`,
		RunE: runAttendance,
	}

	cmd.Flags().String("definition", "", "path to the attendance-definition JSON")
	cmd.Flags().String("votes", "", "path to the votes CSV or JSON")
	cmd.Flags().String("vote-events", "", "path to the vote-events JSON or CSV")
	cmd.Flags().String("persons", "", "path to the all-members JSON or CSV")
	cmd.Flags().String("output", "", "path to write the attendance report JSON")
	cmd.Flags().String("missing-vote-policy", string(analysis.MissingVoteAbsent),
		"how to count an in-office member without a vote record (absent, exclude)")

	for _, flag := range []string{"definition", "votes", "vote-events", "persons", "output"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func runAttendance(cmd *cobra.Command, _ []string) error {
	definitionPath, _ := cmd.Flags().GetString("definition")
	votesPath, _ := cmd.Flags().GetString("votes")
	eventsPath, _ := cmd.Flags().GetString("vote-events")
	personsPath, _ := cmd.Flags().GetString("persons")
	outputPath, _ := cmd.Flags().GetString("output")
	policyValue, _ := cmd.Flags().GetString("missing-vote-policy")

	policy := analysis.MissingVotePolicy(policyValue)
	if policy != analysis.MissingVoteAbsent && policy != analysis.MissingVoteExclude {
		return fmt.Errorf("%w: --missing-vote-policy %q (expected absent or exclude)", common.ErrInvalidArgument, policyValue)
	}

	slog.Info(cli.FormatTitle("Computing attendance..."))

	definition, err := loader.AttendanceDefinition(definitionPath)
	if err != nil {
		return common.NewUserError("failed to load the attendance definition", err)
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

	cfg := analysis.AttendanceConfig{
		MissingVotePolicy: policy,
		Progress:          newProgress("Aggregating attendance..."),
	}
	records, err := analysis.Attendance(cfg, definition, votes, events, persons)
	if err != nil {
		return common.NewUserError("attendance aggregation failed", err)
	}

	if err := writeReport(outputPath, records); err != nil {
		return common.NewUserError("failed to write the attendance report", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Wrote %d attendance records", len(records))), "output", outputPath)
	return nil
}
