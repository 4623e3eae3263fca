package cmd

import (
	"fmt"

	"github.com/DDLX-svg/EdifyX-sub000/internal/stats"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Replay stat submissions that failed to reach the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.close()

		if svc.client == nil {
			return fmt.Errorf("no EDIFYX_API_URL configured; nothing to sync against")
		}

		reconciler := stats.New(svc.cfg.UserID, svc.acct, svc.client, svc.events)
		replayed, remaining, err := reconciler.Replay(cmd.Context())
		if err != nil {
			return fmt.Errorf("replay pending stats: %w", err)
		}

		fmt.Printf("Replayed %d pending submission(s); %d still pending.\n", replayed, remaining)
		return nil
	},
}
