package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Show token balance and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.close()

		ctx := cmd.Context()
		data, err := svc.acct.Get(ctx)
		if err != nil {
			return fmt.Errorf("load account: %w", err)
		}
		fmt.Printf("Balance: %d tokens\n", data.Tokens)

		history, err := svc.events.TokenHistory(ctx, data.UserID, 20)
		if err != nil {
			return fmt.Errorf("load token history: %w", err)
		}
		if len(history) == 0 {
			return nil
		}

		fmt.Println("\nRecent activity:")
		for _, rec := range history {
			fmt.Printf("  %s  %-10s  %4d  balance %4d  %s\n",
				rec.Timestamp.Format("2006-01-02 15:04"),
				rec.Action, rec.Amount, rec.BalanceAfter, rec.Reason)
		}
		return nil
	},
}
