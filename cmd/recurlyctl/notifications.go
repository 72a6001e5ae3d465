package main

import (
	"errors"
	"fmt"

	"github.com/alvinosh/nestjs-recurly-sub000/adapters/sqlite"
	"github.com/alvinosh/nestjs-recurly-sub000/bootstrap"
	"github.com/alvinosh/nestjs-recurly-sub000/ports"
	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Inspect stored webhook notifications",
	Long: `Inspect webhook notifications stored by the receiver.

Reads the database named by database.dsn directly, so the receiver does
not need to be running.

Examples:
  recurlyctl notifications list --limit 10
  recurlyctl notifications get 5f2a...`,
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent notifications",
	RunE:  runNotificationsList,
}

var notificationsGetCmd = &cobra.Command{
	Use:   "get <notification-id>",
	Short: "Print a stored notification",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotificationsGet,
}

var notificationsLimit int

func init() {
	rootCmd.AddCommand(notificationsCmd)

	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsGetCmd)

	notificationsListCmd.Flags().IntVar(&notificationsLimit, "limit", 20, "number of notifications")
}

func openStore() (ports.NotificationStore, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.DSN == bootstrap.MemoryDSN {
		return nil, nil, errors.New("the in-memory store is only readable through the receiver's /notifications endpoint")
	}
	db, err := sqlite.Open(cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return sqlite.NewNotificationStore(db), func() { db.Close() }, nil
}

func runNotificationsList(cmd *cobra.Command, args []string) error {
	store, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	list, err := store.List(cmd.Context(), notificationsLimit)
	if err != nil {
		return fmt.Errorf("failed to list notifications: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		return printJSON(out, list)
	}
	if len(list) == 0 {
		fmt.Fprintln(out, "No notifications found.")
		return nil
	}

	w := newTable(out, "ID", "EVENT", "ACCOUNT", "EVENT TIME", "RECEIVED")
	for _, n := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			n.ID, n.Event(), orDash(n.AccountCode), formatTime(&n.EventTime), formatTime(&n.ReceivedAt))
	}
	w.Flush()
	return nil
}

func runNotificationsGet(cmd *cobra.Command, args []string) error {
	store, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	n, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("notification not found: %s", args[0])
		}
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput() {
		_, err := out.Write(append(n.Payload, '\n'))
		return err
	}
	fmt.Fprintf(out, "ID:              %s\n", n.ID)
	fmt.Fprintf(out, "Event:           %s\n", n.Event())
	fmt.Fprintf(out, "Site:            %s\n", orDash(n.SiteID))
	fmt.Fprintf(out, "Account:         %s\n", orDash(n.AccountCode))
	fmt.Fprintf(out, "Object UUID:     %s\n", orDash(n.UUID))
	fmt.Fprintf(out, "Event Time:      %s\n", formatTime(&n.EventTime))
	fmt.Fprintf(out, "Received:        %s\n", formatTime(&n.ReceivedAt))
	return nil
}
