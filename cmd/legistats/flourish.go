package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/legislature-tools/legistats/internal/cli"
	"github.com/legislature-tools/legistats/internal/common"
	"github.com/legislature-tools/legistats/internal/flourish"
	"github.com/legislature-tools/legistats/internal/model"
)

func flourishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flourish",
		Short: "Convert a report into a Flourish-ready CSV table",
		Long: `Convert a report produced by one of the analysis commands into the CSV
column schema consumed by the Flourish visualization tool.`,
	}

	cmd.AddCommand(
		flourishSubCmd("attendance", "Convert an attendance report", runFlourishAttendance),
		flourishSubCmd("corrections", "Convert a vote-corrections report", runFlourishCorrections),
		flourishSubCmd("rebelity", "Convert a rebelity report", runFlourishRebelity),
		flourishSubCmd("govity", "Convert a govity report", runFlourishGovity),
	)

	return cmd
}

func flourishSubCmd(use, short string, run func(*cobra.Command, []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE:  run,
	}
	cmd.Flags().String("input", "", "path to the report JSON")
	cmd.Flags().String("output", "", "path to write the CSV table")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runFlourishAttendance(cmd *cobra.Command, _ []string) error {
	var records []model.AttendanceRecord
	return convertReport(cmd, &records, func(out *os.File) error {
		return flourish.WriteAttendance(out, records)
	})
}

func runFlourishCorrections(cmd *cobra.Command, _ []string) error {
	var records []model.CorrectionRecord
	return convertReport(cmd, &records, func(out *os.File) error {
		return flourish.WriteCorrections(out, records)
	})
}

func runFlourishRebelity(cmd *cobra.Command, _ []string) error {
	var records []model.RebelityRecord
	return convertReport(cmd, &records, func(out *os.File) error {
		return flourish.WriteRebelity(out, records)
	})
}

func runFlourishGovity(cmd *cobra.Command, _ []string) error {
	var records []model.GovityRecord
	return convertReport(cmd, &records, func(out *os.File) error {
		return flourish.WriteGovity(out, records)
	})
}

// convertReport decodes the input report into records and streams the
// converted table to the output path.
func convertReport(cmd *cobra.Command, records any, write func(*os.File) error) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return common.NewUserError("failed to read the report", err)
	}
	if err := json.Unmarshal(data, records); err != nil {
		return common.NewUserError(fmt.Sprintf("report file %s is not a valid report", inputPath), err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return common.NewUserError("failed to create the output directory", err)
		}
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("failed to create %s", outputPath), err)
	}

	if err := write(out); err != nil {
		out.Close()
		return common.NewUserError(fmt.Sprintf("failed to write %s", outputPath), err)
	}
	if err := out.Close(); err != nil {
		return common.NewUserError(fmt.Sprintf("failed to write %s", outputPath), err)
	}

	slog.Info(cli.FormatSuccess("Wrote Flourish table"), "output", outputPath)
	return nil
}
