package main

import (
	"github.com/spf13/cobra"

	"github.com/ignatzorin/sponsorship-backend/internal/interface/http/dto"
	"github.com/ignatzorin/sponsorship-backend/internal/usecase/sponsor"
)

func newFindCmd() *cobra.Command {
	var (
		location   string
		industries []string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "List local sponsor candidates from the built-in catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := sponsor.NewFindSponsorsUseCase(sponsor.NewSeedMatcher())
			found, err := uc.Execute(location, industries, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.ToSponsorResponses(found))
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "event location")
	cmd.Flags().StringSliceVar(&industries, "industry", nil, "industry filter, repeatable")
	cmd.Flags().IntVar(&limit, "limit", sponsor.DefaultFindLimit, "maximum number of candidates")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}
