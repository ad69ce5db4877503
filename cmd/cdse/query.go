package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/catalog/filter"
	"github.com/airbusgeo/cdse-catalog/interface/catalog/copernicus"
)

func newQueryCmd(a *app) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Query the catalogue",
	}
	queryCmd.AddCommand(newSearchTermsCmd(a))
	queryCmd.AddCommand(newSearchCmd(a))
	return queryCmd
}

func newSearchTermsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search-terms [COLLECTION]",
		Short: "List the available search terms for a collection",
		Long: `List the available search terms for a collection (e.g. SENTINEL-1, SENTINEL-2).
If the collection is omitted, only the builtin search terms are listed, without querying the server.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(w, "Builtin search terms (use with --search-term):")
				fmt.Fprintln(w)
				printTermDescriptors(w, filter.DescribeSearchTerms())
				fmt.Fprintln(w)
				fmt.Fprintln(w, "Specify a collection name to see collection-specific attributes.")
				return nil
			}

			tds, err := a.cfg.provider().DescribeCollection(cmd.Context(), args[0], a.cfg.proxies())
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Search terms for collection %s:\n\n", args[0])
			if len(tds) == 0 {
				fmt.Fprintln(w, "  (none)")
				return nil
			}
			printTermDescriptors(w, tds)
			return nil
		},
	}
}

func printTermDescriptors(w io.Writer, tds entities.TermDescriptors) {
	for _, td := range tds {
		fmt.Fprintf(w, "  - %s\n", td.Name)
		if td.Title != "" {
			fmt.Fprintf(w, "      Description: %s\n", td.Title)
		}
		if td.Type != "" {
			fmt.Fprintf(w, "      Type: %s\n", td.Type)
		}
		if td.Example != "" {
			fmt.Fprintf(w, "      Example: %s\n", td.Example)
		}
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var asJSON, expand bool
	cmd := &cobra.Command{
		Use:   "search COLLECTION",
		Short: "Search for the products matching the search terms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms, err := searchTerms(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			q, err := a.cfg.provider().QueryFeatures(ctx, args[0], terms,
				copernicus.WithProxies(a.cfg.proxies()), copernicus.WithExpandAttributes(expand))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			enc := json.NewEncoder(w)
			it := q.Iter(ctx)
			for it.Next() {
				p := it.Product()
				if asJSON {
					if err := enc.Encode(p); err != nil {
						return err
					}
					continue
				}
				if start, err := p.ContentStart(); err == nil {
					fmt.Fprintf(w, "%s\t%s\n", p.Name(), start.Format(time.RFC3339))
				} else {
					fmt.Fprintln(w, p.Name())
				}
			}
			return it.Err()
		},
	}
	addSearchFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the products as JSON lines")
	cmd.Flags().BoolVar(&expand, "expand-attributes", false, "include the attributes of the products")
	return cmd
}
