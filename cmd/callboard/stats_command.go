package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"callboard/internal/store"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show record counts in the archive database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.Paths.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()

			stats, err := st.Stats(cmd.Context())
			if err != nil {
				return err
			}

			tables := make([]string, 0, len(stats))
			for table := range stats {
				tables = append(tables, table)
			}
			sort.Strings(tables)

			rows := make([][]string, 0, len(tables))
			for _, table := range tables {
				rows = append(rows, []string{table, strconv.Itoa(stats[table])})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Table", "Records"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}
