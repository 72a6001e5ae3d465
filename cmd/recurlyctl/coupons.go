package main

import (
	"fmt"

	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/spf13/cobra"
)

var couponsCmd = &cobra.Command{
	Use:   "coupons",
	Short: "Inspect coupons",
}

var couponsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List coupons",
	RunE:  runCouponsList,
}

var couponsGetCmd = &cobra.Command{
	Use:   "get <coupon-id>",
	Short: "Get coupon details",
	Args:  cobra.ExactArgs(1),
	RunE:  runCouponsGet,
}

var couponsList listFlags

func init() {
	rootCmd.AddCommand(couponsCmd)

	couponsCmd.AddCommand(couponsListCmd)
	couponsCmd.AddCommand(couponsGetCmd)

	couponsList.register(couponsListCmd)
}

func runCouponsList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	params := couponsList.params()
	page, err := client.Coupons.List(cmd.Context(), &params, requestOptions()...)
	if err != nil {
		return fmt.Errorf("failed to list coupons: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, page)
	}
	if len(page.Data) == 0 {
		fmt.Fprintln(out, "No coupons found.")
		return nil
	}

	w := newTable(out, "CODE", "NAME", "STATE", "TYPE", "DURATION", "CREATED")
	for _, c := range page.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.Code, c.Name, c.State, c.CouponType, c.Duration, formatTime(c.CreatedAt))
	}
	w.Flush()
	printNext(out, page)
	return nil
}

func runCouponsGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	c, err := client.Coupons.Get(cmd.Context(), args[0], requestOptions()...)
	if err != nil {
		if recurly.IsNotFound(err) {
			return fmt.Errorf("coupon not found: %s", args[0])
		}
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, c)
	}
	fmt.Fprintf(out, "ID:              %s\n", c.ID)
	fmt.Fprintf(out, "Code:            %s\n", c.Code)
	fmt.Fprintf(out, "Name:            %s\n", c.Name)
	fmt.Fprintf(out, "State:           %s\n", c.State)
	fmt.Fprintf(out, "Type:            %s\n", c.CouponType)
	fmt.Fprintf(out, "Duration:        %s\n", c.Duration)
	fmt.Fprintf(out, "Created:         %s\n", formatTime(c.CreatedAt))
	return nil
}
