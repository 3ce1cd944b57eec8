package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"paster/internal/storage"
)

var (
	historyLimit int
	historyJSON  bool
)

const defaultHistoryLimit = 20

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent pastes",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", defaultHistoryLimit, "maximum entries to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	dir, err := storage.ResolveDir(opts.configDir)
	if err != nil {
		return err
	}

	history, err := storage.OpenHistory(dir)
	if err != nil {
		return err
	}
	defer history.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	records, err := history.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}

	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No pastes recorded yet.")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "TIME\tDELAY\tCHARS\tTOOK\tRESULT")
	for _, record := range records {
		result := "ok"
		if !record.Success {
			result = record.Error
		}
		fmt.Fprintf(writer, "%s\t%d+%d ms\t%d\t%s\t%s\n",
			record.At.Format(time.DateTime),
			record.BaseMs,
			record.JitterMs,
			record.Characters,
			record.Duration.Round(time.Millisecond),
			result,
		)
	}
	return writer.Flush()
}
