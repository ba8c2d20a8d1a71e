package cli

import (
	"distance-matrix-client/internal/app"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/ports"
	"distance-matrix-client/internal/services"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newMatrixCommand(g *globals) *cobra.Command {
	var (
		origins      []string
		destinations []string
		ov           domain.Overrides
		record       bool
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Query distances from every origin to every destination",
		Long: `Send one distance matrix query and print the decoded response.

Options not given on the command line use the API defaults
(driving, metric, en). Traffic model, transit mode and transit routing
preference are sent as given; the API validates them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.NewDMAClient(g.cfg)
			if err != nil {
				return err
			}

			opts, err := ov.Apply(app.DefaultOptions(g.cfg))
			if err != nil {
				return err
			}

			var journal ports.ResultJournal
			if record {
				j, closeJournal, err := app.OpenJournal(cmd.Context(), g.cfg.Database)
				if err != nil {
					return err
				}
				defer closeJournal()
				if j == nil {
					return fmt.Errorf("--record needs database.url to be configured")
				}
				journal = j
			}

			resp, err := services.RunMatrixQuery(cmd.Context(), client, journal, opts, origins, destinations)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&origins, "origin", nil, "Origin address or lat,lng (repeatable)")
	cmd.Flags().StringArrayVar(&destinations, "destination", nil, "Destination address or lat,lng (repeatable)")
	cmd.Flags().StringVar(&ov.Mode, "mode", "", "Travel mode: driving, walking, bicycling, transit")
	cmd.Flags().StringVar(&ov.Units, "units", "", "Unit system: metric, imperial")
	cmd.Flags().StringVar(&ov.Avoid, "avoid", "", "Avoid: tolls, highways, ferries, indoor")
	cmd.Flags().StringVar(&ov.Language, "language", "", "Response language")
	cmd.Flags().StringVar(&ov.DepartureTime, "departure-time", "", "Departure time (unix seconds or now)")
	cmd.Flags().StringVar(&ov.ArrivalTime, "arrival-time", "", "Arrival time (unix seconds)")
	cmd.Flags().StringVar(&ov.TrafficModel, "traffic-model", "", "Traffic model: best_guess, pessimistic, optimistic")
	cmd.Flags().StringVar(&ov.TransitMode, "transit-mode", "", "Transit mode: bus, subway, train, tram, rail")
	cmd.Flags().StringVar(&ov.TransitRoutingPreference, "transit-routing-preference", "", "less_walking or fewer_transfers")
	cmd.Flags().BoolVar(&record, "record", false, "Record the answer in the query journal")

	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}
