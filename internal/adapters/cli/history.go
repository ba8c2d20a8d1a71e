package cli

import (
	"distance-matrix-client/internal/app"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(g *globals) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently recorded matrix elements, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, closeJournal, err := app.OpenJournal(cmd.Context(), g.cfg.Database)
			if err != nil {
				return err
			}
			defer closeJournal()
			if j == nil {
				return errors.New("query journal is disabled: set database.url")
			}

			entries, err := j.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded queries")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "QUERIED AT\tQUERY\tORIGIN\tDESTINATION\tMODE\tSTATUS\tMETERS\tSECONDS")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
					e.QueriedAt.Format(time.RFC3339),
					e.QueryID[:8],
					e.Origin,
					e.Destination,
					e.Mode,
					e.Status,
					e.DistanceMeters,
					e.DurationSeconds,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of rows to show")

	return cmd
}
