package main

import (
	"fmt"

	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/spf13/cobra"
)

var subscriptionsCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "Inspect subscriptions",
	Long: `Inspect subscriptions.

Examples:
  recurlyctl subscriptions list --state active
  recurlyctl subscriptions list --account code-acme
  recurlyctl subscriptions get uuid-5f2a...
  recurlyctl subscriptions cancel <id> --timeframe term_end`,
}

var subscriptionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions",
	RunE:  runSubscriptionsList,
}

var subscriptionsGetCmd = &cobra.Command{
	Use:   "get <subscription-id>",
	Short: "Get subscription details",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubscriptionsGet,
}

var subscriptionsCancelCmd = &cobra.Command{
	Use:   "cancel <subscription-id>",
	Short: "Cancel a subscription at the end of its period",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubscriptionsCancel,
}

var (
	subscriptionsList      listFlags
	subscriptionsState     string
	subscriptionsAccount   string
	subscriptionsTimeframe string
)

func init() {
	rootCmd.AddCommand(subscriptionsCmd)

	subscriptionsCmd.AddCommand(subscriptionsListCmd)
	subscriptionsCmd.AddCommand(subscriptionsGetCmd)
	subscriptionsCmd.AddCommand(subscriptionsCancelCmd)

	subscriptionsList.register(subscriptionsListCmd)
	subscriptionsListCmd.Flags().StringVar(&subscriptionsState, "state", "", "active, canceled, expired, future, in_trial or live")
	subscriptionsListCmd.Flags().StringVar(&subscriptionsAccount, "account", "", "only this account's subscriptions")
	subscriptionsCancelCmd.Flags().StringVar(&subscriptionsTimeframe, "timeframe", "", "bill_date or term_end")
}

func runSubscriptionsList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	params := &recurly.SubscriptionListParams{ListParams: subscriptionsList.params(), State: subscriptionsState}

	var page *recurly.List[recurly.Subscription]
	if subscriptionsAccount != "" {
		page, err = client.Subscriptions.ListForAccount(cmd.Context(), subscriptionsAccount, params, requestOptions()...)
	} else {
		page, err = client.Subscriptions.List(cmd.Context(), params, requestOptions()...)
	}
	if err != nil {
		return fmt.Errorf("failed to list subscriptions: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, page)
	}
	if len(page.Data) == 0 {
		fmt.Fprintln(out, "No subscriptions found.")
		return nil
	}

	w := newTable(out, "ID", "UUID", "ACCOUNT", "PLAN", "STATE", "PERIOD ENDS")
	for _, s := range page.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.UUID, accountCode(s.Account), planCode(s.Plan), s.State, formatTime(s.CurrentPeriodEndsAt))
	}
	w.Flush()
	printNext(out, page)
	return nil
}

func runSubscriptionsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	s, err := client.Subscriptions.Get(cmd.Context(), args[0], requestOptions()...)
	if err != nil {
		if recurly.IsNotFound(err) {
			return fmt.Errorf("subscription not found: %s", args[0])
		}
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, s)
	}
	fmt.Fprintf(out, "ID:              %s\n", s.ID)
	fmt.Fprintf(out, "UUID:            %s\n", s.UUID)
	fmt.Fprintf(out, "Account:         %s\n", accountCode(s.Account))
	fmt.Fprintf(out, "Plan:            %s\n", planCode(s.Plan))
	fmt.Fprintf(out, "State:           %s\n", s.State)
	fmt.Fprintf(out, "Quantity:        %d\n", s.Quantity)
	fmt.Fprintf(out, "Unit Amount:     %.2f %s\n", s.UnitAmount, s.Currency)
	fmt.Fprintf(out, "Auto Renew:      %v\n", s.AutoRenew)
	fmt.Fprintf(out, "Period Ends:     %s\n", formatTime(s.CurrentPeriodEndsAt))
	return nil
}

func runSubscriptionsCancel(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	var body *recurly.SubscriptionCancel
	if subscriptionsTimeframe != "" {
		body = &recurly.SubscriptionCancel{Timeframe: subscriptionsTimeframe}
	}

	s, err := client.Subscriptions.Cancel(cmd.Context(), args[0], body, requestOptions()...)
	if err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), s)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Canceled subscription: %s (%s)\n", checkMark, s.ID, s.State)
	return nil
}

func accountCode(a *recurly.AccountMini) string {
	if a == nil {
		return "-"
	}
	return a.Code
}

func planCode(p *recurly.PlanMini) string {
	if p == nil {
		return "-"
	}
	return p.Code
}
