package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"notification-admin/pkg/client"
)

var notificationListFlags struct {
	channel   string
	status    string
	leadID    string
	startDate string
	endDate   string
	page      int
	limit     int64
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Inspect and retry delivery notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List delivery notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := apiClient.ListNotifications(cmd.Context(), client.NotificationListOptions{
			Filter: client.NotificationFilter{
				Channel:   notificationListFlags.channel,
				Status:    notificationListFlags.status,
				LeadID:    notificationListFlags.leadID,
				StartDate: notificationListFlags.startDate,
				EndDate:   notificationListFlags.endDate,
			},
			Page:  notificationListFlags.page,
			Limit: notificationListFlags.limit,
		})
		if err != nil {
			return err
		}

		if len(out.Items) == 0 {
			fmt.Println("No notifications match the current filters.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCHANNEL\tRECIPIENT\tSTATUS\tATTEMPTS\tERROR\tCREATED")
		for _, n := range out.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				n.ID, n.Channel, n.Recipient, n.Status, n.Attempts, truncate(n.ErrorMessage, 40), n.CreatedAt)
		}
		w.Flush()

		printPageFooter(out.Meta)
		return nil
	},
}

var notificationsRetryCmd = &cobra.Command{
	Use:   "retry <id>",
	Short: "Re-queue a failed delivery",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := apiClient.RetryNotification(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Notification %s re-queued (status: %s, attempts so far: %d)\n", n.ID, n.Status, n.Attempts)
		return nil
	},
}

var exportFlags struct {
	channel   string
	status    string
	leadID    string
	startDate string
	endDate   string
}

var notificationsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered delivery list as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := apiClient.ExportNotifications(cmd.Context(), client.ExportOptions{
			Channel:   exportFlags.channel,
			Status:    exportFlags.status,
			LeadID:    exportFlags.leadID,
			StartDate: exportFlags.startDate,
			EndDate:   exportFlags.endDate,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d rows to %s\n", out.RowCount, out.ObjectName)
		fmt.Printf("Download (valid 24h): %s\n", out.DownloadURL)
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func printPageFooter(meta client.Paginator) {
	fmt.Printf("\nPage %d of %d (%d total)\n", meta.CurrentPage, meta.TotalPages, meta.Total)
}

func init() {
	f := notificationsListCmd.Flags()
	f.StringVar(&notificationListFlags.channel, "channel", "", "filter by channel (email, sms, webhook)")
	f.StringVar(&notificationListFlags.status, "status", "", "filter by status (pending, sent, failed, retrying)")
	f.StringVar(&notificationListFlags.leadID, "lead", "", "filter by lead ID")
	f.StringVar(&notificationListFlags.startDate, "start", "", "filter by created-at lower bound (RFC3339)")
	f.StringVar(&notificationListFlags.endDate, "end", "", "filter by created-at upper bound (RFC3339)")
	f.IntVar(&notificationListFlags.page, "page", 1, "page number")
	f.Int64Var(&notificationListFlags.limit, "limit", 20, "page size")

	e := notificationsExportCmd.Flags()
	e.StringVar(&exportFlags.channel, "channel", "", "filter by channel")
	e.StringVar(&exportFlags.status, "status", "", "filter by status")
	e.StringVar(&exportFlags.leadID, "lead", "", "filter by lead ID")
	e.StringVar(&exportFlags.startDate, "start", "", "filter by created-at lower bound (RFC3339)")
	e.StringVar(&exportFlags.endDate, "end", "", "filter by created-at upper bound (RFC3339)")

	notificationsCmd.AddCommand(notificationsListCmd, notificationsRetryCmd, notificationsExportCmd)
	rootCmd.AddCommand(notificationsCmd)
}
