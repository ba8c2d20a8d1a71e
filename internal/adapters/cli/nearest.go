package cli

import (
	"distance-matrix-client/internal/app"
	"distance-matrix-client/internal/services"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newNearestCommand(g *globals) *cobra.Command {
	var (
		origin       string
		destinations []string
	)

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Rank destinations by travel duration from one origin",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.NewDMAClient(g.cfg)
			if err != nil {
				return err
			}

			ranked, err := services.RankDestinations(cmd.Context(), client, origin, destinations)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tDESTINATION\tMETERS\tSECONDS")
			for i, r := range ranked {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", i+1, r.Destination, r.DistanceMeters, r.DurationSeconds)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "Origin address or lat,lng")
	cmd.Flags().StringArrayVar(&destinations, "destination", nil, "Destination address or lat,lng (repeatable)")

	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}
