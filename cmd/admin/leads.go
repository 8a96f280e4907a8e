package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"notification-admin/pkg/client"
)

var leadListFlags struct {
	email     string
	utmSource string
	search    string
	page      int
	limit     int64
}

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Browse captured leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List captured leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := apiClient.ListLeads(cmd.Context(), client.LeadListOptions{
			Filter: client.LeadFilter{
				Email:     leadListFlags.email,
				UTMSource: leadListFlags.utmSource,
				Search:    leadListFlags.search,
			},
			Page:  leadListFlags.page,
			Limit: leadListFlags.limit,
		})
		if err != nil {
			return err
		}

		if len(out.Items) == 0 {
			fmt.Println("No leads match the current filters.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSOURCE\tCREATED")
		for _, l := range out.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.ID, l.Name, l.Email, l.UTMSource, l.CreatedAt)
		}
		w.Flush()

		printPageFooter(out.Meta)
		return nil
	},
}

var leadsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := apiClient.GetLead(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:       %s\n", l.ID)
		fmt.Printf("Name:     %s\n", l.Name)
		fmt.Printf("Email:    %s\n", l.Email)
		if l.Phone != "" {
			fmt.Printf("Phone:    %s\n", l.Phone)
		}
		if l.Message != "" {
			fmt.Printf("Message:  %s\n", l.Message)
		}
		if l.UTMSource != "" {
			fmt.Printf("UTM:      %s / %s / %s\n", l.UTMSource, l.UTMMedium, l.UTMCampaign)
		}
		fmt.Printf("Created:  %s\n", l.CreatedAt)
		return nil
	},
}

func init() {
	f := leadsListCmd.Flags()
	f.StringVar(&leadListFlags.email, "email", "", "filter by exact email")
	f.StringVar(&leadListFlags.utmSource, "utm-source", "", "filter by UTM source")
	f.StringVar(&leadListFlags.search, "search", "", "search name and email")
	f.IntVar(&leadListFlags.page, "page", 1, "page number")
	f.Int64Var(&leadListFlags.limit, "limit", 20, "page size")

	leadsCmd.AddCommand(leadsListCmd, leadsGetCmd)
	rootCmd.AddCommand(leadsCmd)
}
