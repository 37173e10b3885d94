package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nimblemo/bodygraph/internal/config"
	"github.com/nimblemo/bodygraph/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously saved charts",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the stored JSON payload of one chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum rows to list")
	historyCmd.AddCommand(historyShowCmd)

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	st, err := store.Open(cmd.Context(), cfg.StorePath)
	if err != nil {
		return err
	}
	defer st.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	rows, err := st.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "no saved charts")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%4s  %-10s %-5s %6s  %-20s %-15s %-4s %s\n",
		"ID", "DATE", "TIME", "UTC", "TYPE", "AUTHORITY", "PROF", "CROSS")
	for _, r := range rows {
		fmt.Fprintf(os.Stdout, "%4d  %-10s %-5s %+6.1f  %-20s %-15s %-4s %s\n",
			r.ID, r.BirthDate, r.BirthTime, r.UTCOffset,
			r.Type, r.Authority, r.Profile, r.Cross)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chart id %q", args[0])
	}

	st, err := store.Open(cmd.Context(), cfg.StorePath)
	if err != nil {
		return err
	}
	defer st.Close()

	payload, err := st.Payload(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}
