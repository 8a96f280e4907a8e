package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"notification-admin/pkg/client"
)

var alertListFlags struct {
	alertType  string
	unreadOnly bool
	page       int
	limit      int64
}

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Review and acknowledge admin alerts",
}

var alertsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List admin alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := apiClient.ListAlerts(cmd.Context(), client.AlertListOptions{
			Filter: client.AlertFilter{
				Type:       alertListFlags.alertType,
				UnreadOnly: alertListFlags.unreadOnly,
			},
			Page:  alertListFlags.page,
			Limit: alertListFlags.limit,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Unread alerts: %d\n\n", out.UnreadCount)

		if len(out.Items) == 0 {
			fmt.Println("No alerts match the current filters.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tTITLE\tREAD\tCREATED")
		for _, a := range out.Items {
			read := "no"
			if a.ReadAt != nil {
				read = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Type, truncate(a.Title, 50), read, a.CreatedAt)
		}
		w.Flush()

		printPageFooter(out.Meta)
		return nil
	},
}

var alertsReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark an alert as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := apiClient.MarkAlertRead(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Alert %s marked read at %s\n", a.ID, derefOr(a.ReadAt, "unknown"))
		return nil
	},
}

var alertsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every unread alert as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := apiClient.MarkAllAlertsRead(cmd.Context())
		if err != nil {
			return err
		}

		if out.MarkedCount == 0 {
			fmt.Println("No unread alerts.")
			return nil
		}
		fmt.Printf("Marked %d alerts as read.\n", out.MarkedCount)
		return nil
	},
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func init() {
	f := alertsListCmd.Flags()
	f.StringVar(&alertListFlags.alertType, "type", "", "filter by alert type")
	f.BoolVar(&alertListFlags.unreadOnly, "unread", false, "show unread alerts only")
	f.IntVar(&alertListFlags.page, "page", 1, "page number")
	f.Int64Var(&alertListFlags.limit, "limit", 20, "page size")

	alertsCmd.AddCommand(alertsListCmd, alertsReadCmd, alertsReadAllCmd)
	rootCmd.AddCommand(alertsCmd)
}
