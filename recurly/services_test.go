package recurly

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestServices_Routes(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK, `{}`)
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		method string
		path   string
		query  string
	}{
		// Sites
		{"Sites.List", func() error { _, err := client.Sites.List(ctx, nil); return err }, "GET", "/sites", ""},
		{"Sites.Get", func() error { _, err := client.Sites.Get(ctx, "subdomain-acme"); return err }, "GET", "/sites/subdomain-acme", ""},

		// Accounts
		{"Accounts.List", func() error {
			_, err := client.Accounts.List(ctx, &AccountListParams{PastDue: "true"})
			return err
		}, "GET", "/accounts", "past_due=true"},
		{"Accounts.Create", func() error { _, err := client.Accounts.Create(ctx, &AccountCreate{Code: "a"}); return err }, "POST", "/accounts", ""},
		{"Accounts.Get", func() error { _, err := client.Accounts.Get(ctx, Code("a")); return err }, "GET", "/accounts/code-a", ""},
		{"Accounts.Update", func() error { _, err := client.Accounts.Update(ctx, "a1", &AccountUpdate{}); return err }, "PUT", "/accounts/a1", ""},
		{"Accounts.Deactivate", func() error { _, err := client.Accounts.Deactivate(ctx, "a1"); return err }, "DELETE", "/accounts/a1", ""},
		{"Accounts.Reactivate", func() error { _, err := client.Accounts.Reactivate(ctx, "a1"); return err }, "PUT", "/accounts/a1/reactivate", ""},
		{"Accounts.GetBalance", func() error { _, err := client.Accounts.GetBalance(ctx, "a1"); return err }, "GET", "/accounts/a1/balance", ""},
		{"Accounts.ListChildAccounts", func() error { _, err := client.Accounts.ListChildAccounts(ctx, "a1", nil); return err }, "GET", "/accounts/a1/accounts", ""},

		// AccountAcquisitions
		{"AccountAcquisitions.List", func() error { _, err := client.AccountAcquisitions.List(ctx, nil); return err }, "GET", "/acquisitions", ""},
		{"AccountAcquisitions.Get", func() error { _, err := client.AccountAcquisitions.Get(ctx, "a1"); return err }, "GET", "/accounts/a1/acquisition", ""},
		{"AccountAcquisitions.Update", func() error {
			_, err := client.AccountAcquisitions.Update(ctx, "a1", &AccountAcquisitionUpdate{Channel: "blog"})
			return err
		}, "PUT", "/accounts/a1/acquisition", ""},
		{"AccountAcquisitions.Remove", func() error { return client.AccountAcquisitions.Remove(ctx, "a1") }, "DELETE", "/accounts/a1/acquisition", ""},

		// AccountNotes
		{"AccountNotes.List", func() error { _, err := client.AccountNotes.List(ctx, "a1", nil); return err }, "GET", "/accounts/a1/notes", ""},
		{"AccountNotes.Get", func() error { _, err := client.AccountNotes.Get(ctx, "a1", "n1"); return err }, "GET", "/accounts/a1/notes/n1", ""},

		// BillingInfo
		{"BillingInfo.Get", func() error { _, err := client.BillingInfo.Get(ctx, "a1"); return err }, "GET", "/accounts/a1/billing_info", ""},
		{"BillingInfo.Update", func() error {
			_, err := client.BillingInfo.Update(ctx, "a1", &BillingInfoCreate{TokenID: "tok"})
			return err
		}, "PUT", "/accounts/a1/billing_info", ""},
		{"BillingInfo.Remove", func() error { return client.BillingInfo.Remove(ctx, "a1") }, "DELETE", "/accounts/a1/billing_info", ""},
		{"BillingInfo.Verify", func() error { _, err := client.BillingInfo.Verify(ctx, "a1", nil); return err }, "POST", "/accounts/a1/billing_info/verify", ""},
		{"BillingInfo.VerifyCVV", func() error {
			_, err := client.BillingInfo.VerifyCVV(ctx, "a1", &BillingInfoVerifyCVV{VerificationValue: "123"})
			return err
		}, "POST", "/accounts/a1/billing_info/verify_cvv", ""},

		// BillingInfos
		{"BillingInfos.List", func() error { _, err := client.BillingInfos.List(ctx, "a1", nil); return err }, "GET", "/accounts/a1/billing_infos", ""},
		{"BillingInfos.Create", func() error {
			_, err := client.BillingInfos.Create(ctx, "a1", &BillingInfoCreate{TokenID: "tok"})
			return err
		}, "POST", "/accounts/a1/billing_infos", ""},
		{"BillingInfos.Get", func() error { _, err := client.BillingInfos.Get(ctx, "a1", "b1"); return err }, "GET", "/accounts/a1/billing_infos/b1", ""},
		{"BillingInfos.Update", func() error {
			_, err := client.BillingInfos.Update(ctx, "a1", "b1", &BillingInfoCreate{TokenID: "tok"})
			return err
		}, "PUT", "/accounts/a1/billing_infos/b1", ""},
		{"BillingInfos.Remove", func() error { return client.BillingInfos.Remove(ctx, "a1", "b1") }, "DELETE", "/accounts/a1/billing_infos/b1", ""},

		// Coupons
		{"Coupons.List", func() error { _, err := client.Coupons.List(ctx, nil); return err }, "GET", "/coupons", ""},
		{"Coupons.Create", func() error {
			_, err := client.Coupons.Create(ctx, &CouponCreate{Code: "c", Name: "C", DiscountType: "percent", DiscountPercent: 10})
			return err
		}, "POST", "/coupons", ""},
		{"Coupons.Get", func() error { _, err := client.Coupons.Get(ctx, "c1"); return err }, "GET", "/coupons/c1", ""},
		{"Coupons.Update", func() error { _, err := client.Coupons.Update(ctx, "c1", &CouponUpdate{Name: "C2"}); return err }, "PUT", "/coupons/c1", ""},
		{"Coupons.Deactivate", func() error { _, err := client.Coupons.Deactivate(ctx, "c1"); return err }, "DELETE", "/coupons/c1", ""},
		{"Coupons.Restore", func() error { _, err := client.Coupons.Restore(ctx, "c1", nil); return err }, "PUT", "/coupons/c1/restore", ""},
		{"Coupons.ListUniqueCodes", func() error { _, err := client.Coupons.ListUniqueCodes(ctx, "c1", nil); return err }, "GET", "/coupons/c1/unique_coupon_codes", ""},
		{"Coupons.GenerateUniqueCodes", func() error {
			_, err := client.Coupons.GenerateUniqueCodes(ctx, "c1", &CouponBulkCreate{NumberOfUniqueCodes: 5})
			return err
		}, "POST", "/coupons/c1/generate", ""},

		// UniqueCouponCodes
		{"UniqueCouponCodes.Get", func() error { _, err := client.UniqueCouponCodes.Get(ctx, "u1"); return err }, "GET", "/unique_coupon_codes/u1", ""},
		{"UniqueCouponCodes.Deactivate", func() error { _, err := client.UniqueCouponCodes.Deactivate(ctx, "u1"); return err }, "DELETE", "/unique_coupon_codes/u1", ""},
		{"UniqueCouponCodes.Reactivate", func() error { _, err := client.UniqueCouponCodes.Reactivate(ctx, "u1"); return err }, "PUT", "/unique_coupon_codes/u1/restore", ""},

		// CouponRedemptions
		{"CouponRedemptions.ListForAccount", func() error { _, err := client.CouponRedemptions.ListForAccount(ctx, "a1", nil); return err }, "GET", "/accounts/a1/coupon_redemptions", ""},
		{"CouponRedemptions.ListActive", func() error { _, err := client.CouponRedemptions.ListActive(ctx, "a1"); return err }, "GET", "/accounts/a1/coupon_redemptions/active", ""},
		{"CouponRedemptions.Create", func() error {
			_, err := client.CouponRedemptions.Create(ctx, "a1", &CouponRedemptionCreate{CouponID: "c1"})
			return err
		}, "POST", "/accounts/a1/coupon_redemptions", ""},
		{"CouponRedemptions.RemoveActive", func() error { _, err := client.CouponRedemptions.RemoveActive(ctx, "a1"); return err }, "DELETE", "/accounts/a1/coupon_redemptions/active", ""},
		{"CouponRedemptions.Remove", func() error { _, err := client.CouponRedemptions.Remove(ctx, "a1", "r1"); return err }, "DELETE", "/accounts/a1/coupon_redemptions/r1", ""},
		{"CouponRedemptions.ListForInvoice", func() error { _, err := client.CouponRedemptions.ListForInvoice(ctx, "i1", nil); return err }, "GET", "/invoices/i1/coupon_redemptions", ""},
		{"CouponRedemptions.ListForSubscription", func() error {
			_, err := client.CouponRedemptions.ListForSubscription(ctx, "s1", nil)
			return err
		}, "GET", "/subscriptions/s1/coupon_redemptions", ""},

		// CreditPayments
		{"CreditPayments.List", func() error { _, err := client.CreditPayments.List(ctx, nil); return err }, "GET", "/credit_payments", ""},
		{"CreditPayments.ListForAccount", func() error { _, err := client.CreditPayments.ListForAccount(ctx, "a1", nil); return err }, "GET", "/accounts/a1/credit_payments", ""},
		{"CreditPayments.Get", func() error { _, err := client.CreditPayments.Get(ctx, "cp1"); return err }, "GET", "/credit_payments/cp1", ""},

		// CustomFieldDefinitions
		{"CustomFieldDefinitions.List", func() error {
			_, err := client.CustomFieldDefinitions.List(ctx, &CustomFieldDefinitionListParams{RelatedType: "account"})
			return err
		}, "GET", "/custom_field_definitions", "related_type=account"},
		{"CustomFieldDefinitions.Get", func() error { _, err := client.CustomFieldDefinitions.Get(ctx, "d1"); return err }, "GET", "/custom_field_definitions/d1", ""},

		// Items
		{"Items.List", func() error { _, err := client.Items.List(ctx, nil); return err }, "GET", "/items", ""},
		{"Items.Create", func() error { _, err := client.Items.Create(ctx, &ItemCreate{Code: "i", Name: "I"}); return err }, "POST", "/items", ""},
		{"Items.Get", func() error { _, err := client.Items.Get(ctx, "i1"); return err }, "GET", "/items/i1", ""},
		{"Items.Update", func() error { _, err := client.Items.Update(ctx, "i1", &ItemUpdate{}); return err }, "PUT", "/items/i1", ""},
		{"Items.Deactivate", func() error { _, err := client.Items.Deactivate(ctx, "i1"); return err }, "DELETE", "/items/i1", ""},
		{"Items.Reactivate", func() error { _, err := client.Items.Reactivate(ctx, "i1"); return err }, "PUT", "/items/i1/reactivate", ""},

		// MeasuredUnits
		{"MeasuredUnits.List", func() error { _, err := client.MeasuredUnits.List(ctx, nil); return err }, "GET", "/measured_units", ""},
		{"MeasuredUnits.Create", func() error {
			_, err := client.MeasuredUnits.Create(ctx, &MeasuredUnitCreate{Name: "GB", DisplayName: "Gigabyte"})
			return err
		}, "POST", "/measured_units", ""},
		{"MeasuredUnits.Get", func() error { _, err := client.MeasuredUnits.Get(ctx, "m1"); return err }, "GET", "/measured_units/m1", ""},
		{"MeasuredUnits.Update", func() error { _, err := client.MeasuredUnits.Update(ctx, "m1", &MeasuredUnitUpdate{}); return err }, "PUT", "/measured_units/m1", ""},
		{"MeasuredUnits.Remove", func() error { _, err := client.MeasuredUnits.Remove(ctx, "m1"); return err }, "DELETE", "/measured_units/m1", ""},

		// Plans
		{"Plans.List", func() error {
			_, err := client.Plans.List(ctx, &PlanListParams{State: "active"})
			return err
		}, "GET", "/plans", "state=active"},
		{"Plans.Create", func() error {
			_, err := client.Plans.Create(ctx, &PlanCreate{
				Code:       "gold",
				Name:       "Gold",
				Currencies: []PlanPricing{{Currency: "USD", UnitAmount: 10}},
			})
			return err
		}, "POST", "/plans", ""},
		{"Plans.Get", func() error { _, err := client.Plans.Get(ctx, Code("gold")); return err }, "GET", "/plans/code-gold", ""},
		{"Plans.Update", func() error { _, err := client.Plans.Update(ctx, "p1", &PlanUpdate{}); return err }, "PUT", "/plans/p1", ""},
		{"Plans.Remove", func() error { _, err := client.Plans.Remove(ctx, "p1"); return err }, "DELETE", "/plans/p1", ""},

		// AddOns
		{"AddOns.ListForPlan", func() error { _, err := client.AddOns.ListForPlan(ctx, "p1", nil); return err }, "GET", "/plans/p1/add_ons", ""},
		{"AddOns.Create", func() error {
			_, err := client.AddOns.Create(ctx, "p1", &AddOnCreate{Code: "extra", Name: "Extra"})
			return err
		}, "POST", "/plans/p1/add_ons", ""},
		{"AddOns.Get", func() error { _, err := client.AddOns.Get(ctx, "p1", "ao1"); return err }, "GET", "/plans/p1/add_ons/ao1", ""},
		{"AddOns.Update", func() error { _, err := client.AddOns.Update(ctx, "p1", "ao1", &AddOnUpdate{}); return err }, "PUT", "/plans/p1/add_ons/ao1", ""},
		{"AddOns.Remove", func() error { _, err := client.AddOns.Remove(ctx, "p1", "ao1"); return err }, "DELETE", "/plans/p1/add_ons/ao1", ""},
		{"AddOns.ListSiteAddOns", func() error { _, err := client.AddOns.ListSiteAddOns(ctx, nil); return err }, "GET", "/add_ons", ""},
		{"AddOns.GetSiteAddOn", func() error { _, err := client.AddOns.GetSiteAddOn(ctx, "ao1"); return err }, "GET", "/add_ons/ao1", ""},

		// Invoices
		{"Invoices.List", func() error {
			_, err := client.Invoices.List(ctx, &InvoiceListParams{State: "past_due"})
			return err
		}, "GET", "/invoices", "state=past_due"},
		{"Invoices.ListForAccount", func() error { _, err := client.Invoices.ListForAccount(ctx, "a1", nil); return err }, "GET", "/accounts/a1/invoices", ""},
		{"Invoices.ListForSubscription", func() error { _, err := client.Invoices.ListForSubscription(ctx, "s1", nil); return err }, "GET", "/subscriptions/s1/invoices", ""},
		{"Invoices.CreateForAccount", func() error {
			_, err := client.Invoices.CreateForAccount(ctx, "a1", &InvoiceCreate{Currency: "USD"})
			return err
		}, "POST", "/accounts/a1/invoices", ""},
		{"Invoices.PreviewForAccount", func() error {
			_, err := client.Invoices.PreviewForAccount(ctx, "a1", &InvoiceCreate{Currency: "USD"})
			return err
		}, "POST", "/accounts/a1/invoices/preview", ""},
		{"Invoices.Get", func() error { _, err := client.Invoices.Get(ctx, "number-1001"); return err }, "GET", "/invoices/number-1001", ""},
		{"Invoices.Update", func() error { _, err := client.Invoices.Update(ctx, "i1", &InvoiceUpdate{PONumber: "po"}); return err }, "PUT", "/invoices/i1", ""},
		{"Invoices.GetPDF", func() error { _, err := client.Invoices.GetPDF(ctx, "i1"); return err }, "GET", "/invoices/i1.pdf", ""},
		{"Invoices.ApplyCreditBalance", func() error { _, err := client.Invoices.ApplyCreditBalance(ctx, "i1"); return err }, "PUT", "/invoices/i1/apply_credit_balance", ""},
		{"Invoices.Collect", func() error { _, err := client.Invoices.Collect(ctx, "i1", nil); return err }, "PUT", "/invoices/i1/collect", ""},
		{"Invoices.MarkFailed", func() error { _, err := client.Invoices.MarkFailed(ctx, "i1"); return err }, "PUT", "/invoices/i1/mark_failed", ""},
		{"Invoices.MarkSuccessful", func() error { _, err := client.Invoices.MarkSuccessful(ctx, "i1"); return err }, "PUT", "/invoices/i1/mark_successful", ""},
		{"Invoices.Reopen", func() error { _, err := client.Invoices.Reopen(ctx, "i1"); return err }, "PUT", "/invoices/i1/reopen", ""},
		{"Invoices.Void", func() error { _, err := client.Invoices.Void(ctx, "i1"); return err }, "PUT", "/invoices/i1/void", ""},
		{"Invoices.RecordExternalTransaction", func() error {
			_, err := client.Invoices.RecordExternalTransaction(ctx, "i1", &ExternalTransaction{PaymentMethod: "check", Amount: 5})
			return err
		}, "POST", "/invoices/i1/transactions", ""},
		{"Invoices.ListRelated", func() error { _, err := client.Invoices.ListRelated(ctx, "i1"); return err }, "GET", "/invoices/i1/related_invoices", ""},
		{"Invoices.Refund", func() error {
			_, err := client.Invoices.Refund(ctx, "i1", &InvoiceRefund{Type: "amount", Amount: 5})
			return err
		}, "POST", "/invoices/i1/refund", ""},

		// LineItems
		{"LineItems.List", func() error { _, err := client.LineItems.List(ctx, nil); return err }, "GET", "/line_items", ""},
		{"LineItems.ListForAccount", func() error { _, err := client.LineItems.ListForAccount(ctx, "a1", nil); return err }, "GET", "/accounts/a1/line_items", ""},
		{"LineItems.ListForInvoice", func() error { _, err := client.LineItems.ListForInvoice(ctx, "i1", nil); return err }, "GET", "/invoices/i1/line_items", ""},
		{"LineItems.ListForSubscription", func() error { _, err := client.LineItems.ListForSubscription(ctx, "s1", nil); return err }, "GET", "/subscriptions/s1/line_items", ""},
		{"LineItems.CreateForAccount", func() error {
			_, err := client.LineItems.CreateForAccount(ctx, "a1", &LineItemCreate{Currency: "USD", UnitAmount: 3})
			return err
		}, "POST", "/accounts/a1/line_items", ""},
		{"LineItems.Get", func() error { _, err := client.LineItems.Get(ctx, "l1"); return err }, "GET", "/line_items/l1", ""},
		{"LineItems.Remove", func() error { return client.LineItems.Remove(ctx, "l1") }, "DELETE", "/line_items/l1", ""},

		// Purchases
		{"Purchases.Create", func() error { _, err := client.Purchases.Create(ctx, validPurchase()); return err }, "POST", "/purchases", ""},
		{"Purchases.Preview", func() error { _, err := client.Purchases.Preview(ctx, validPurchase()); return err }, "POST", "/purchases/preview", ""},
		{"Purchases.CreatePending", func() error { _, err := client.Purchases.CreatePending(ctx, validPurchase()); return err }, "POST", "/purchases/pending", ""},
		{"Purchases.Authorize", func() error { _, err := client.Purchases.Authorize(ctx, validPurchase()); return err }, "POST", "/purchases/authorize", ""},
		{"Purchases.Capture", func() error { _, err := client.Purchases.Capture(ctx, "t1"); return err }, "POST", "/purchases/t1/capture", ""},
		{"Purchases.Cancel", func() error { _, err := client.Purchases.Cancel(ctx, "t1"); return err }, "POST", "/purchases/t1/cancel/", ""},

		// ShippingAddresses
		{"ShippingAddresses.List", func() error { _, err := client.ShippingAddresses.List(ctx, "a1", nil); return err }, "GET", "/accounts/a1/shipping_addresses", ""},
		{"ShippingAddresses.Create", func() error {
			_, err := client.ShippingAddresses.Create(ctx, "a1", validShippingAddress())
			return err
		}, "POST", "/accounts/a1/shipping_addresses", ""},
		{"ShippingAddresses.Get", func() error { _, err := client.ShippingAddresses.Get(ctx, "a1", "sa1"); return err }, "GET", "/accounts/a1/shipping_addresses/sa1", ""},
		{"ShippingAddresses.Update", func() error {
			_, err := client.ShippingAddresses.Update(ctx, "a1", "sa1", &ShippingAddressUpdate{City: "Oslo"})
			return err
		}, "PUT", "/accounts/a1/shipping_addresses/sa1", ""},
		{"ShippingAddresses.Remove", func() error { return client.ShippingAddresses.Remove(ctx, "a1", "sa1") }, "DELETE", "/accounts/a1/shipping_addresses/sa1", ""},

		// ShippingMethods
		{"ShippingMethods.List", func() error { _, err := client.ShippingMethods.List(ctx, nil); return err }, "GET", "/shipping_methods", ""},
		{"ShippingMethods.Create", func() error {
			_, err := client.ShippingMethods.Create(ctx, &ShippingMethodCreate{Code: "ups", Name: "UPS"})
			return err
		}, "POST", "/shipping_methods", ""},
		{"ShippingMethods.Get", func() error { _, err := client.ShippingMethods.Get(ctx, "sm1"); return err }, "GET", "/shipping_methods/sm1", ""},
		{"ShippingMethods.Update", func() error {
			_, err := client.ShippingMethods.Update(ctx, "sm1", &ShippingMethodUpdate{Name: "UPS Ground"})
			return err
		}, "PUT", "/shipping_methods/sm1", ""},
		{"ShippingMethods.Deactivate", func() error { _, err := client.ShippingMethods.Deactivate(ctx, "sm1"); return err }, "DELETE", "/shipping_methods/sm1", ""},

		// Subscriptions
		{"Subscriptions.List", func() error {
			_, err := client.Subscriptions.List(ctx, &SubscriptionListParams{State: "live"})
			return err
		}, "GET", "/subscriptions", "state=live"},
		{"Subscriptions.ListForAccount", func() error { _, err := client.Subscriptions.ListForAccount(ctx, "a1", nil); return err }, "GET", "/accounts/a1/subscriptions", ""},
		{"Subscriptions.Create", func() error {
			_, err := client.Subscriptions.Create(ctx, &SubscriptionCreate{
				PlanCode: "gold",
				Account:  &AccountCreate{Code: "a"},
				Currency: "USD",
			})
			return err
		}, "POST", "/subscriptions", ""},
		{"Subscriptions.Get", func() error { _, err := client.Subscriptions.Get(ctx, "s1"); return err }, "GET", "/subscriptions/s1", ""},
		{"Subscriptions.Update", func() error { _, err := client.Subscriptions.Update(ctx, "s1", &SubscriptionUpdate{}); return err }, "PUT", "/subscriptions/s1", ""},
		{"Subscriptions.Terminate", func() error {
			_, err := client.Subscriptions.Terminate(ctx, "s1", &TerminateParams{Refund: "none"})
			return err
		}, "DELETE", "/subscriptions/s1", "refund=none"},
		{"Subscriptions.Cancel", func() error {
			_, err := client.Subscriptions.Cancel(ctx, "s1", &SubscriptionCancel{Timeframe: "term_end"})
			return err
		}, "PUT", "/subscriptions/s1/cancel", ""},
		{"Subscriptions.Reactivate", func() error { _, err := client.Subscriptions.Reactivate(ctx, "s1"); return err }, "PUT", "/subscriptions/s1/reactivate", ""},
		{"Subscriptions.Pause", func() error {
			_, err := client.Subscriptions.Pause(ctx, "s1", &SubscriptionPause{RemainingPauseCycles: 2})
			return err
		}, "PUT", "/subscriptions/s1/pause", ""},
		{"Subscriptions.Resume", func() error { _, err := client.Subscriptions.Resume(ctx, "s1"); return err }, "PUT", "/subscriptions/s1/resume", ""},
		{"Subscriptions.ConvertTrial", func() error { _, err := client.Subscriptions.ConvertTrial(ctx, "s1"); return err }, "PUT", "/subscriptions/s1/convert_trial", ""},
		{"Subscriptions.PreviewRenewal", func() error { _, err := client.Subscriptions.PreviewRenewal(ctx, "s1"); return err }, "GET", "/subscriptions/s1/preview_renewal", ""},

		// SubscriptionChanges
		{"SubscriptionChanges.Get", func() error { _, err := client.SubscriptionChanges.Get(ctx, "s1"); return err }, "GET", "/subscriptions/s1/change", ""},
		{"SubscriptionChanges.Create", func() error {
			_, err := client.SubscriptionChanges.Create(ctx, "s1", &SubscriptionChangeCreate{Timeframe: "now", PlanCode: "gold"})
			return err
		}, "POST", "/subscriptions/s1/change", ""},
		{"SubscriptionChanges.Preview", func() error {
			_, err := client.SubscriptionChanges.Preview(ctx, "s1", &SubscriptionChangeCreate{PlanCode: "gold"})
			return err
		}, "POST", "/subscriptions/s1/change/preview", ""},
		{"SubscriptionChanges.Remove", func() error { return client.SubscriptionChanges.Remove(ctx, "s1") }, "DELETE", "/subscriptions/s1/change", ""},

		// Usage
		{"Usage.List", func() error {
			_, err := client.Usage.List(ctx, "s1", "ao1", &UsageListParams{BillingStatus: "unbilled"})
			return err
		}, "GET", "/subscriptions/s1/add_ons/ao1/usage", "billing_status=unbilled"},
		{"Usage.Create", func() error {
			_, err := client.Usage.Create(ctx, "s1", "ao1", &UsageCreate{Amount: 12})
			return err
		}, "POST", "/subscriptions/s1/add_ons/ao1/usage", ""},
		{"Usage.Get", func() error { _, err := client.Usage.Get(ctx, "u1"); return err }, "GET", "/usage/u1", ""},
		{"Usage.Update", func() error { _, err := client.Usage.Update(ctx, "u1", &UsageCreate{Amount: 3}); return err }, "PUT", "/usage/u1", ""},
		{"Usage.Remove", func() error { return client.Usage.Remove(ctx, "u1") }, "DELETE", "/usage/u1", ""},

		// Transactions
		{"Transactions.List", func() error {
			_, err := client.Transactions.List(ctx, &TransactionListParams{Type: "refund", Success: "true"})
			return err
		}, "GET", "/transactions", "success=true&type=refund"},
		{"Transactions.ListForAccount", func() error { _, err := client.Transactions.ListForAccount(ctx, "a1", nil); return err }, "GET", "/accounts/a1/transactions", ""},
		{"Transactions.Get", func() error { _, err := client.Transactions.Get(ctx, "t1"); return err }, "GET", "/transactions/t1", ""},

		// GiftCards
		{"GiftCards.List", func() error { _, err := client.GiftCards.List(ctx, nil); return err }, "GET", "/gift_cards", ""},
		{"GiftCards.Create", func() error { _, err := client.GiftCards.Create(ctx, validGiftCard()); return err }, "POST", "/gift_cards", ""},
		{"GiftCards.Get", func() error { _, err := client.GiftCards.Get(ctx, "g1"); return err }, "GET", "/gift_cards/g1", ""},
		{"GiftCards.Preview", func() error { _, err := client.GiftCards.Preview(ctx, validGiftCard()); return err }, "POST", "/gift_cards/preview", ""},
		{"GiftCards.Redeem", func() error {
			_, err := client.GiftCards.Redeem(ctx, "ABC123", &GiftCardRedeem{RecipientAccount: AccountReference{Code: "a"}})
			return err
		}, "POST", "/gift_cards/ABC123/redeem", ""},

		// ExternalProducts
		{"ExternalProducts.List", func() error { _, err := client.ExternalProducts.List(ctx, nil); return err }, "GET", "/external_products", ""},
		{"ExternalProducts.Create", func() error {
			_, err := client.ExternalProducts.Create(ctx, &ExternalProductCreate{Name: "Gold app"})
			return err
		}, "POST", "/external_products", ""},
		{"ExternalProducts.Get", func() error { _, err := client.ExternalProducts.Get(ctx, "ep1"); return err }, "GET", "/external_products/ep1", ""},
		{"ExternalProducts.Update", func() error {
			_, err := client.ExternalProducts.Update(ctx, "ep1", &ExternalProductUpdate{PlanID: "p1"})
			return err
		}, "PUT", "/external_products/ep1", ""},
		{"ExternalProducts.Deactivate", func() error { _, err := client.ExternalProducts.Deactivate(ctx, "ep1"); return err }, "DELETE", "/external_products/ep1", ""},
		{"ExternalProducts.ListReferences", func() error { _, err := client.ExternalProducts.ListReferences(ctx, "ep1", nil); return err }, "GET", "/external_products/ep1/external_product_references", ""},
		{"ExternalProducts.CreateReference", func() error {
			_, err := client.ExternalProducts.CreateReference(ctx, "ep1", validProductReference())
			return err
		}, "POST", "/external_products/ep1/external_product_references", ""},
		{"ExternalProducts.GetReference", func() error { _, err := client.ExternalProducts.GetReference(ctx, "ep1", "r1"); return err }, "GET", "/external_products/ep1/external_product_references/r1", ""},
		{"ExternalProducts.DeactivateReference", func() error {
			_, err := client.ExternalProducts.DeactivateReference(ctx, "ep1", "r1")
			return err
		}, "DELETE", "/external_products/ep1/external_product_references/r1", ""},

		// ExternalSubscriptions
		{"ExternalSubscriptions.List", func() error { _, err := client.ExternalSubscriptions.List(ctx, nil); return err }, "GET", "/external_subscriptions", ""},
		{"ExternalSubscriptions.ListForAccount", func() error {
			_, err := client.ExternalSubscriptions.ListForAccount(ctx, "a1", nil)
			return err
		}, "GET", "/accounts/a1/external_subscriptions", ""},
		{"ExternalSubscriptions.Create", func() error {
			_, err := client.ExternalSubscriptions.Create(ctx, &ExternalSubscriptionCreate{
				Account:                  AccountReference{Code: "a"},
				ExternalProductReference: *validProductReference(),
			})
			return err
		}, "POST", "/external_subscriptions", ""},
		{"ExternalSubscriptions.Get", func() error { _, err := client.ExternalSubscriptions.Get(ctx, "es1"); return err }, "GET", "/external_subscriptions/es1", ""},
		{"ExternalSubscriptions.Update", func() error {
			_, err := client.ExternalSubscriptions.Update(ctx, "es1", &ExternalSubscriptionUpdate{State: "canceled"})
			return err
		}, "PUT", "/external_subscriptions/es1", ""},

		// ExternalAccounts
		{"ExternalAccounts.List", func() error { _, err := client.ExternalAccounts.List(ctx, "a1"); return err }, "GET", "/accounts/a1/external_accounts", ""},
		{"ExternalAccounts.Create", func() error { _, err := client.ExternalAccounts.Create(ctx, "a1", validExternalAccount()); return err }, "POST", "/accounts/a1/external_accounts", ""},
		{"ExternalAccounts.Get", func() error { _, err := client.ExternalAccounts.Get(ctx, "a1", "ea1"); return err }, "GET", "/accounts/a1/external_accounts/ea1", ""},
		{"ExternalAccounts.Update", func() error {
			_, err := client.ExternalAccounts.Update(ctx, "a1", "ea1", validExternalAccount())
			return err
		}, "PUT", "/accounts/a1/external_accounts/ea1", ""},
		{"ExternalAccounts.Remove", func() error { _, err := client.ExternalAccounts.Remove(ctx, "a1", "ea1"); return err }, "DELETE", "/accounts/a1/external_accounts/ea1", ""},

		// ExternalInvoices
		{"ExternalInvoices.List", func() error { _, err := client.ExternalInvoices.List(ctx, nil); return err }, "GET", "/external_invoices", ""},
		{"ExternalInvoices.ListForAccount", func() error { _, err := client.ExternalInvoices.ListForAccount(ctx, "a1", nil); return err }, "GET", "/accounts/a1/external_invoices", ""},
		{"ExternalInvoices.ListForSubscription", func() error {
			_, err := client.ExternalInvoices.ListForSubscription(ctx, "es1", nil)
			return err
		}, "GET", "/external_subscriptions/es1/external_invoices", ""},
		{"ExternalInvoices.Create", func() error {
			_, err := client.ExternalInvoices.Create(ctx, "es1", validExternalInvoice())
			return err
		}, "POST", "/external_subscriptions/es1/external_invoices", ""},
		{"ExternalInvoices.Get", func() error { _, err := client.ExternalInvoices.Get(ctx, "ei1"); return err }, "GET", "/external_invoices/ei1", ""},

		// ExternalPaymentPhases
		{"ExternalPaymentPhases.List", func() error { _, err := client.ExternalPaymentPhases.List(ctx, "es1", nil); return err }, "GET", "/external_subscriptions/es1/external_payment_phases", ""},
		{"ExternalPaymentPhases.Get", func() error { _, err := client.ExternalPaymentPhases.Get(ctx, "es1", "ph1"); return err }, "GET", "/external_subscriptions/es1/external_payment_phases/ph1", ""},

		// Entitlements
		{"Entitlements.ListForAccount", func() error {
			_, err := client.Entitlements.ListForAccount(ctx, "a1", &EntitlementListParams{State: "active"})
			return err
		}, "GET", "/accounts/a1/entitlements", "state=active"},

		// DunningCampaigns
		{"DunningCampaigns.List", func() error { _, err := client.DunningCampaigns.List(ctx, nil); return err }, "GET", "/dunning_campaigns", ""},
		{"DunningCampaigns.Get", func() error { _, err := client.DunningCampaigns.Get(ctx, "dc1"); return err }, "GET", "/dunning_campaigns/dc1", ""},
		{"DunningCampaigns.BulkUpdate", func() error {
			_, err := client.DunningCampaigns.BulkUpdate(ctx, "dc1", &DunningCampaignsBulkUpdate{PlanCodes: []string{"gold"}})
			return err
		}, "PUT", "/dunning_campaigns/dc1/bulk_update", ""},

		// InvoiceTemplates
		{"InvoiceTemplates.List", func() error { _, err := client.InvoiceTemplates.List(ctx, nil); return err }, "GET", "/invoice_templates", ""},
		{"InvoiceTemplates.Get", func() error { _, err := client.InvoiceTemplates.Get(ctx, "it1"); return err }, "GET", "/invoice_templates/it1", ""},
		{"InvoiceTemplates.ListAccounts", func() error { _, err := client.InvoiceTemplates.ListAccounts(ctx, "it1", nil); return err }, "GET", "/invoice_templates/it1/accounts", ""},

		// BusinessEntities
		{"BusinessEntities.List", func() error { _, err := client.BusinessEntities.List(ctx); return err }, "GET", "/business_entities", ""},
		{"BusinessEntities.Get", func() error { _, err := client.BusinessEntities.Get(ctx, "be1"); return err }, "GET", "/business_entities/be1", ""},
		{"BusinessEntities.ListInvoices", func() error { _, err := client.BusinessEntities.ListInvoices(ctx, "be1", nil); return err }, "GET", "/business_entities/be1/invoices", ""},

		// GeneralLedgerAccounts
		{"GeneralLedgerAccounts.List", func() error {
			_, err := client.GeneralLedgerAccounts.List(ctx, &GeneralLedgerAccountListParams{AccountType: "revenue"})
			return err
		}, "GET", "/general_ledger_accounts", "account_type=revenue"},
		{"GeneralLedgerAccounts.Create", func() error {
			_, err := client.GeneralLedgerAccounts.Create(ctx, &GeneralLedgerAccountCreate{Code: "4000", AccountType: "revenue"})
			return err
		}, "POST", "/general_ledger_accounts", ""},
		{"GeneralLedgerAccounts.Get", func() error { _, err := client.GeneralLedgerAccounts.Get(ctx, "gl1"); return err }, "GET", "/general_ledger_accounts/gl1", ""},
		{"GeneralLedgerAccounts.Update", func() error {
			_, err := client.GeneralLedgerAccounts.Update(ctx, "gl1", &GeneralLedgerAccountUpdate{Description: "Sales"})
			return err
		}, "PUT", "/general_ledger_accounts/gl1", ""},

		// PerformanceObligations
		{"PerformanceObligations.List", func() error { _, err := client.PerformanceObligations.List(ctx); return err }, "GET", "/performance_obligations", ""},
		{"PerformanceObligations.Get", func() error { _, err := client.PerformanceObligations.Get(ctx, "po1"); return err }, "GET", "/performance_obligations/po1", ""},

		// PriceSegments
		{"PriceSegments.List", func() error { _, err := client.PriceSegments.List(ctx, nil); return err }, "GET", "/price_segments", ""},
		{"PriceSegments.Get", func() error { _, err := client.PriceSegments.Get(ctx, "ps1"); return err }, "GET", "/price_segments/ps1", ""},

		// AutomatedExports
		{"AutomatedExports.ListDates", func() error { _, err := client.AutomatedExports.ListDates(ctx); return err }, "GET", "/export_dates", ""},
		{"AutomatedExports.ListFiles", func() error { _, err := client.AutomatedExports.ListFiles(ctx, "2024-05-01"); return err }, "GET", "/export_dates/2024-05-01/export_files", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := cap.count()
			if err := tt.call(); err != nil {
				t.Fatalf("%s error = %v", tt.name, err)
			}
			if cap.count() != before+1 {
				t.Fatalf("requests = %d, want exactly one new request", cap.count()-before)
			}
			r, _ := cap.last(t)
			if r.Method != tt.method {
				t.Errorf("method = %s, want %s", r.Method, tt.method)
			}
			if r.URL.Path != tt.path {
				t.Errorf("path = %s, want %s", r.URL.Path, tt.path)
			}
			if r.URL.RawQuery != tt.query {
				t.Errorf("query = %s, want %s", r.URL.RawQuery, tt.query)
			}
		})
	}
}

func validPurchase() *PurchaseCreate {
	return &PurchaseCreate{
		Currency:      "USD",
		Account:       &AccountCreate{Code: "a"},
		Subscriptions: []PurchaseSubscription{{PlanCode: "gold"}},
	}
}

func validShippingAddress() *ShippingAddressCreate {
	return &ShippingAddressCreate{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Street1:    "1 Main St",
		City:       "London",
		PostalCode: "N1",
		Country:    "GB",
	}
}

func validGiftCard() *GiftCardCreate {
	return &GiftCardCreate{
		ProductCode:   "gift",
		UnitAmount:    25,
		Currency:      "USD",
		Delivery:      &GiftCardDelivery{Method: "email", EmailAddress: "friend@example.com"},
		GifterAccount: &AccountCreate{Code: "gifter"},
	}
}

func validProductReference() *ExternalProductReferenceCreate {
	return &ExternalProductReferenceCreate{ReferenceCode: "com.acme.gold", ExternalConnectionType: "apple_app_store"}
}

func validExternalAccount() *ExternalAccountCreate {
	return &ExternalAccountCreate{ExternalAccountCode: "apple-123", ExternalConnectionType: "apple_app_store"}
}

func validExternalInvoice() *ExternalInvoiceCreate {
	purchased := mustTime("2024-05-01T10:00:00Z")
	return &ExternalInvoiceCreate{
		ExternalID:  "receipt-1",
		State:       "paid",
		Total:       "9.99",
		Currency:    "USD",
		PurchasedAt: &purchased,
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestInvoices_GetPDF(t *testing.T) {
	cap := &capture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.record(r)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "k", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	pdf, err := client.Invoices.GetPDF(context.Background(), "number-1001")
	if err != nil {
		t.Fatalf("GetPDF() error = %v", err)
	}
	if string(pdf) != "%PDF-1.4 fake" {
		t.Errorf("pdf = %q", pdf)
	}
	r, _ := cap.last(t)
	if got := r.Header.Get("Accept"); got != "application/pdf" {
		t.Errorf("Accept = %s, want application/pdf", got)
	}
	if r.URL.Path != "/invoices/number-1001.pdf" {
		t.Errorf("path = %s", r.URL.Path)
	}
}

func TestValidation_RejectsBeforeRequest(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK, `{}`)
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func() error
		wantField string
		wantRule  string
	}{
		{
			name:      "missing account code",
			call:      func() error { _, err := client.Accounts.Create(ctx, &AccountCreate{}); return err },
			wantField: "code",
			wantRule:  "required",
		},
		{
			name: "bad email",
			call: func() error {
				_, err := client.Accounts.Update(ctx, "a1", &AccountUpdate{Email: "not-an-email"})
				return err
			},
			wantField: "email",
			wantRule:  "email",
		},
		{
			name: "limit too large",
			call: func() error {
				_, err := client.Accounts.List(ctx, &AccountListParams{ListParams: ListParams{Limit: 500}})
				return err
			},
			wantField: "limit",
			wantRule:  "max",
		},
		{
			name: "bad order",
			call: func() error {
				_, err := client.Plans.List(ctx, &PlanListParams{ListParams: ListParams{Order: "sideways"}})
				return err
			},
			wantField: "order",
			wantRule:  "oneof",
		},
		{
			name: "nested subscription account",
			call: func() error {
				_, err := client.Subscriptions.Create(ctx, &SubscriptionCreate{
					PlanCode: "gold",
					Account:  &AccountCreate{},
					Currency: "USD",
				})
				return err
			},
			wantField: "account.code",
			wantRule:  "required",
		},
		{
			name: "cvv not numeric",
			call: func() error {
				_, err := client.BillingInfo.VerifyCVV(ctx, "a1", &BillingInfoVerifyCVV{VerificationValue: "12a"})
				return err
			},
			wantField: "verification_value",
			wantRule:  "numeric",
		},
		{
			name: "currency length",
			call: func() error {
				_, err := client.LineItems.CreateForAccount(ctx, "a1", &LineItemCreate{Currency: "US"})
				return err
			},
			wantField: "currency",
			wantRule:  "len",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.wantField && f.Rule == tt.wantRule {
					found = true
				}
			}
			if !found {
				t.Errorf("fields = %+v, want %s failing %s", verr.Fields, tt.wantField, tt.wantRule)
			}
		})
	}

	if cap.count() != 0 {
		t.Errorf("requests = %d, want 0 for invalid input", cap.count())
	}
}

func TestValidation_MissingBody(t *testing.T) {
	client, cap := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.Coupons.Create(context.Background(), nil)
	if !errors.Is(err, ErrMissingBody) {
		t.Errorf("error = %v, want ErrMissingBody", err)
	}
	if cap.count() != 0 {
		t.Errorf("requests = %d, want 0", cap.count())
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "code", Rule: "required"},
		{Field: "limit", Rule: "max", Param: "200"},
	}}

	want := "invalid request: code failed required, limit failed max=200"
	if err.Error() != want {
		t.Errorf("Error() = %s, want %s", err.Error(), want)
	}
}
