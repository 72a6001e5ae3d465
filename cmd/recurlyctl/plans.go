package main

import (
	"fmt"
	"strings"

	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Inspect subscription plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans",
	RunE:  runPlansList,
}

var plansGetCmd = &cobra.Command{
	Use:   "get <plan-id>",
	Short: "Get plan details",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlansGet,
}

var (
	plansList  listFlags
	plansState string
)

func init() {
	rootCmd.AddCommand(plansCmd)

	plansCmd.AddCommand(plansListCmd)
	plansCmd.AddCommand(plansGetCmd)

	plansList.register(plansListCmd)
	plansListCmd.Flags().StringVar(&plansState, "state", "", "active or inactive")
}

func runPlansList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	page, err := client.Plans.List(cmd.Context(), &recurly.PlanListParams{ListParams: plansList.params(), State: plansState}, requestOptions()...)
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, page)
	}
	if len(page.Data) == 0 {
		fmt.Fprintln(out, "No plans found.")
		return nil
	}

	w := newTable(out, "CODE", "NAME", "STATE", "INTERVAL", "PRICES")
	for _, p := range page.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Code, p.Name, p.State, interval(p.IntervalLength, p.IntervalUnit), prices(p.Currencies))
	}
	w.Flush()
	printNext(out, page)
	return nil
}

func runPlansGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	p, err := client.Plans.Get(cmd.Context(), args[0], requestOptions()...)
	if err != nil {
		if recurly.IsNotFound(err) {
			return fmt.Errorf("plan not found: %s", args[0])
		}
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, p)
	}
	fmt.Fprintf(out, "ID:              %s\n", p.ID)
	fmt.Fprintf(out, "Code:            %s\n", p.Code)
	fmt.Fprintf(out, "Name:            %s\n", p.Name)
	fmt.Fprintf(out, "State:           %s\n", p.State)
	fmt.Fprintf(out, "Interval:        %s\n", interval(p.IntervalLength, p.IntervalUnit))
	fmt.Fprintf(out, "Prices:          %s\n", prices(p.Currencies))
	fmt.Fprintf(out, "Created:         %s\n", formatTime(p.CreatedAt))
	return nil
}

func interval(length int, unit string) string {
	if unit == "" {
		return "-"
	}
	return fmt.Sprintf("%d %s", length, unit)
}

func prices(ps []recurly.PlanPricing) string {
	if len(ps) == 0 {
		return "-"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%.2f %s", p.UnitAmount, p.Currency)
	}
	return strings.Join(parts, ", ")
}
