package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
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

		fmt.Printf("User:      %s\n", data.UserID)
		fmt.Printf("Tokens:    %d\n", data.Tokens)
		fmt.Printf("Lifetime:  %d answered, %d correct\n", data.LifetimeAttempted, data.LifetimeCorrect)
		fmt.Printf("This week: %d answered, %d correct (week of %s)\n",
			data.WeekAttempted, data.WeekCorrect, data.WeekStart.Format("2006-01-02"))

		sessions, err := svc.events.RecentSessions(ctx, 10)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		if len(sessions) == 0 {
			return nil
		}

		fmt.Println("\nRecent sessions:")
		for _, rec := range sessions {
			fmt.Printf("  %s  %-10s  %d/%d correct  %-10s  %d:%02d\n",
				rec.Timestamp.Format("2006-01-02 15:04"),
				rec.Flavor, rec.Correct, rec.Attempted, rec.Outcome,
				rec.DurationSecs/60, rec.DurationSecs%60)
		}
		return nil
	},
}
