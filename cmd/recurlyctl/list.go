package main

import (
	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/spf13/cobra"
)

// listFlags are the paging flags shared by every list command.
type listFlags struct {
	limit  int
	order  string
	sort   string
	cursor string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", 20, "page size (1-200)")
	cmd.Flags().StringVar(&f.order, "order", "", "asc or desc")
	cmd.Flags().StringVar(&f.sort, "sort", "", "created_at or updated_at")
	cmd.Flags().StringVar(&f.cursor, "cursor", "", "cursor from a previous page")
}

func (f *listFlags) params() recurly.ListParams {
	return recurly.ListParams{
		Limit:  f.limit,
		Order:  f.order,
		Sort:   f.sort,
		Cursor: f.cursor,
	}
}
