package main

import (
	"fmt"
	"strings"

	"dashboard-srv/internal/export"
	"dashboard-srv/internal/report"
	"dashboard-srv/pkg/util"

	"github.com/spf13/cobra"
)

func newDailyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Production and QC points per log date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newExportUseCase(cmd.Context())
			if err != nil {
				return err
			}
			f, err := uc.DailyCSV(cmd.Context())
			if err != nil {
				return err
			}
			return writeFile(cmd, opts, f)
		},
	}
}

func newPublicationsCmd(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "publications",
		Short: "Publication progress summary",
		Long: `Summarises every publication. With --date, keeps the publications last
worked on that date, topped up with the most recent older ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := publicationInput(date)
			if err != nil {
				return err
			}

			uc, err := newExportUseCase(cmd.Context())
			if err != nil {
				return err
			}
			f, err := uc.PublicationCSV(cmd.Context(), input)
			if err != nil {
				return err
			}
			return writeFile(cmd, opts, f)
		},
	}
	cmd.Flags().StringVar(&date, "date", "all", `Anchor date (YYYY-MM-DD), "latest" or "all"`)

	return cmd
}

func publicationInput(date string) (export.PublicationInput, error) {
	switch strings.ToLower(strings.TrimSpace(date)) {
	case "", "all":
		return export.PublicationInput{All: true}, nil
	case "latest":
		return export.PublicationInput{}, nil
	}

	d, err := util.StrToDate(date)
	if err != nil {
		return export.PublicationInput{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
	}
	return export.PublicationInput{Date: d}, nil
}

func newUsersCmd(opts *options) *cobra.Command {
	var input export.UserInput
	var view string

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Per user efficiency and quality for the selected periods",
		Example: `  report users --view day --selection 2025-06-02
  report users --view week --selection 2025-W23 --selection 2025-W24 --out exports/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := report.ParseBucket(view)
			if err != nil {
				return err
			}
			input.Bucket = bucket

			uc, err := newExportUseCase(cmd.Context())
			if err != nil {
				return err
			}
			f, err := uc.UserCSV(cmd.Context(), input)
			if err != nil {
				return err
			}
			return writeFile(cmd, opts, f)
		},
	}
	cmd.Flags().StringVar(&view, "view", string(report.BucketDay), "Period view: day, week or month")
	cmd.Flags().StringArrayVar(&input.Selections, "selection", nil, "Period to include (repeatable)")
	cmd.Flags().StringVar(&input.Team, "team", report.FilterAll, "Team group filter")
	cmd.Flags().StringVar(&input.User, "user", report.FilterAll, "User filter")

	return cmd
}
