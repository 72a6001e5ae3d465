package main

import (
	"fmt"

	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Inspect customer accounts",
	Long: `Inspect customer accounts.

Accounts are addressed by ID or by code with the code- prefix.

Examples:
  recurlyctl accounts list --limit 50
  recurlyctl accounts get code-acme
  recurlyctl accounts deactivate code-acme`,
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	RunE:  runAccountsList,
}

var accountsGetCmd = &cobra.Command{
	Use:   "get <account-id>",
	Short: "Get account details",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsGet,
}

var accountsDeactivateCmd = &cobra.Command{
	Use:   "deactivate <account-id>",
	Short: "Close an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsDeactivate,
}

var (
	accountsList  listFlags
	accountsEmail string
	accountsPast  bool
)

func init() {
	rootCmd.AddCommand(accountsCmd)

	accountsCmd.AddCommand(accountsListCmd)
	accountsCmd.AddCommand(accountsGetCmd)
	accountsCmd.AddCommand(accountsDeactivateCmd)

	accountsList.register(accountsListCmd)
	accountsListCmd.Flags().StringVar(&accountsEmail, "email", "", "only accounts with this email")
	accountsListCmd.Flags().BoolVar(&accountsPast, "past-due", false, "only accounts with past due invoices")
}

func runAccountsList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	params := &recurly.AccountListParams{ListParams: accountsList.params(), Email: accountsEmail}
	if accountsPast {
		params.PastDue = "true"
	}

	page, err := client.Accounts.List(cmd.Context(), params, requestOptions()...)
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, page)
	}
	if len(page.Data) == 0 {
		fmt.Fprintln(out, "No accounts found.")
		return nil
	}

	w := newTable(out, "ID", "CODE", "EMAIL", "STATE", "CREATED")
	for _, a := range page.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Code, orDash(a.Email), a.State, formatTime(a.CreatedAt))
	}
	w.Flush()
	printNext(out, page)
	return nil
}

func runAccountsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	a, err := client.Accounts.Get(cmd.Context(), args[0], requestOptions()...)
	if err != nil {
		if recurly.IsNotFound(err) {
			return fmt.Errorf("account not found: %s", args[0])
		}
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, a)
	}
	printAccount(cmd, a)
	return nil
}

func runAccountsDeactivate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	a, err := client.Accounts.Deactivate(cmd.Context(), args[0], requestOptions()...)
	if err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), a)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Deactivated account: %s (%s)\n", checkMark, a.Code, a.State)
	return nil
}

func printAccount(cmd *cobra.Command, a *recurly.Account) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:              %s\n", a.ID)
	fmt.Fprintf(out, "Code:            %s\n", a.Code)
	fmt.Fprintf(out, "State:           %s\n", a.State)
	fmt.Fprintf(out, "Email:           %s\n", orDash(a.Email))
	fmt.Fprintf(out, "Name:            %s\n", orDash(joinName(a.FirstName, a.LastName)))
	if a.Company != "" {
		fmt.Fprintf(out, "Company:         %s\n", a.Company)
	}
	fmt.Fprintf(out, "Subscriber:      %v\n", a.HasLiveSubscription)
	fmt.Fprintf(out, "Past Due:        %v\n", a.HasPastDueInvoice)
	fmt.Fprintf(out, "Created:         %s\n", formatTime(a.CreatedAt))
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
