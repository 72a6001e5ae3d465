package main

import (
	"fmt"

	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/spf13/cobra"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Inspect sites the API key can access",
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sites",
	RunE:  runSitesList,
}

var sitesList listFlags

func init() {
	rootCmd.AddCommand(sitesCmd)
	sitesCmd.AddCommand(sitesListCmd)
	sitesList.register(sitesListCmd)
}

func runSitesList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	page, err := client.Sites.List(cmd.Context(), &recurly.SiteListParams{ListParams: sitesList.params()}, requestOptions()...)
	if err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, page)
	}
	if len(page.Data) == 0 {
		fmt.Fprintln(out, "No sites found.")
		return nil
	}

	w := newTable(out, "ID", "SUBDOMAIN", "MODE", "CREATED")
	for _, s := range page.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Subdomain, s.Mode, formatTime(s.CreatedAt))
	}
	w.Flush()
	printNext(out, page)
	return nil
}
