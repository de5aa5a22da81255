package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/storefront-pager/internal/pager"
	"github.com/maxviazov/storefront-pager/internal/service"
)

const (
	outputJSON  = "json"
	outputTable = "table"
)

// NewDescribeCmd creates the describe command.
func NewDescribeCmd() *cobra.Command {
	var (
		total, page, size int
		window            bool
		output            string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the page descriptor for a list",
		Example: `  # Page 7 of 1000 items, 10 per page
  pagerctl describe --total 1000 --page 7

  # Only the bounded window of page links, as a table
  pagerctl describe --total 1000 --page 50 --window --output table`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputJSON && output != outputTable {
				return fmt.Errorf("unsupported output %q (want %s or %s)", output, outputJSON, outputTable)
			}
			svc := service.NewPagerService(service.DefaultLimits, zerolog.Nop())
			d, err := svc.Describe(cmd.Context(), total, page, size)
			if err != nil {
				return describeError(err)
			}
			if window {
				d.Pages = d.WindowPages()
			}
			if output == outputTable {
				return writeTable(cmd.OutOrStdout(), d)
			}
			return writeJSON(cmd.OutOrStdout(), d)
		},
	}

	cmd.Flags().IntVar(&total, "total", 0, "Total number of items")
	cmd.Flags().IntVar(&page, "page", pager.DefaultCurrentPage, "Current page, 1-based")
	cmd.Flags().IntVar(&size, "size", pager.DefaultPageSize, "Items per page")
	cmd.Flags().BoolVar(&window, "window", false, "List only the pages inside the start/end window")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "Output format: json or table")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

// describeError flattens field errors into one readable line.
func describeError(err error) error {
	fields := service.FieldErrors(err)
	if len(fields) == 0 {
		return err
	}
	parts := make([]string, 0, len(fields))
	for _, fe := range fields {
		parts = append(parts, fmt.Sprintf("--%s %s", flagName(fe.Field), fe.Message))
	}
	return fmt.Errorf("%w: %s", err, strings.Join(parts, "; "))
}

func flagName(field string) string {
	switch field {
	case "total_items":
		return "total"
	case "current_page":
		return "page"
	case "page_size":
		return "size"
	default:
		return field
	}
}

func writeJSON(w io.Writer, d pager.Descriptor) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func writeTable(w io.Writer, d pager.Descriptor) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value int
	}{
		{"total items", d.TotalItems},
		{"current page", d.CurrentPage},
		{"page size", d.PageSize},
		{"total pages", d.TotalPages},
		{"start page", d.StartPage},
		{"end page", d.EndPage},
		{"start index", d.StartIndex},
		{"end index", d.EndIndex},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", r.name, r.value)
	}
	fmt.Fprintf(tw, "pages\t%s\n", joinInts(d.Pages))
	return tw.Flush()
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
