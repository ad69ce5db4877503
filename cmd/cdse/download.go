package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/downloader"
	"github.com/airbusgeo/cdse-catalog/interface/catalog/copernicus"
	"github.com/airbusgeo/cdse-catalog/interface/provider"
	"github.com/airbusgeo/cdse-catalog/service/log"
)

func newDownloadCmd(a *app) *cobra.Command {
	var opts downloader.Options
	var extract bool
	cmd := &cobra.Command{
		Use:   "download COLLECTION PATH",
		Short: "Download all the products matching the search terms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			collection, path := args[0], args[1]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("path %s does not exist", path)
			}
			if a.cfg.credentials().Anonymous() {
				return fmt.Errorf("a CDSE account is required to download products (--username/--password or CDSE_USERNAME/CDSE_PASSWORD)")
			}
			terms, err := searchTerms(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			q, err := a.cfg.provider().QueryFeatures(ctx, collection, terms, copernicus.WithProxies(a.cfg.proxies()))
			if err != nil {
				return err
			}
			ip := provider.NewCopernicusImageProvider(a.cfg.credentials(), a.cfg.proxies(), a.cfg.DownloadURL, extract)

			it := q.Iter(ctx)
			products := func(yield func(int, entities.Product) bool) {
				for it.Next() {
					if !yield(it.Index(), it.Product()) {
						return
					}
				}
			}
			paths, err := downloader.DownloadFeatures(ctx, ip, products, path, opts)
			log.Logger(ctx).Sugar().Infof("%d products in %s", len(paths), path)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if err != nil {
				return err
			}
			return it.Err()
		},
	}
	addSearchFlags(cmd)
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 1, "number of concurrent connections")
	cmd.Flags().BoolVar(&opts.OverwriteExisting, "overwrite-existing", false, "overwrite already downloaded files")
	cmd.Flags().BoolVar(&extract, "extract", false, "unzip the downloaded products")
	return cmd
}
