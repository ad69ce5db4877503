package downloader

import (
	"context"
	"fmt"
	"iter"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/interface/provider"
	"github.com/airbusgeo/cdse-catalog/service"
	"github.com/airbusgeo/cdse-catalog/service/log"
)

// Options of DownloadFeatures
type Options struct {
	// Concurrency is the maximum number of simultaneous downloads (at least 1)
	Concurrency int
	// OverwriteExisting downloads the products even if they already are in the local directory
	OverwriteExisting bool
}

// DownloadFeatures downloads the products to localDir using the image provider.
// The products are consumed from the calling goroutine, so a lazy catalogue query can be passed directly.
// Products without a valid Id are skipped. A download failure does not stop the others:
// the errors are merged and returned with the paths of the products successfully downloaded.
func DownloadFeatures(ctx context.Context, ip provider.ImageProvider, products iter.Seq2[int, entities.Product], localDir string, opts Options) ([]string, error) {
	if _, err := os.Stat(localDir); err != nil {
		return nil, fmt.Errorf("DownloadFeatures: %w", err)
	}
	concurrency := max(opts.Concurrency, 1)

	var (
		mu    sync.Mutex
		paths []string
		errs  error
	)
	var wg errgroup.Group
	wg.SetLimit(concurrency)

	for i, product := range products {
		if ctx.Err() != nil {
			break
		}
		if _, err := product.UUID(); err != nil {
			log.Logger(ctx).Sugar().Debugf("skipping product %d: %v", i, err)
			continue
		}
		path := ip.Path(product, localDir)
		if !opts.OverwriteExisting {
			if _, err := os.Stat(path); err == nil {
				log.Logger(ctx).Sugar().Infof("%s already exists, skipping", path)
				mu.Lock()
				paths = append(paths, path)
				mu.Unlock()
				continue
			}
		} else if err := os.RemoveAll(path); err != nil {
			log.Logger(ctx).Sugar().Warnf("unable to remove %s: %v", path, err)
		}

		wg.Go(func() error {
			log.Logger(ctx).Sugar().Infof("downloading %s with %s", product.Name(), ip.Name())
			p, err := ip.Download(ctx, product, localDir)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Logger(ctx).Sugar().Errorf("%s: %v", product.Name(), err)
				errs = service.MergeErrors(true, errs, err)
				return nil
			}
			log.Logger(ctx).Sugar().Infof("%s downloaded to %s", product.Name(), p)
			paths = append(paths, p)
			return nil
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		errs = service.MergeErrors(true, errs, err)
	}
	if errs != nil {
		return paths, fmt.Errorf("DownloadFeatures.%w", errs)
	}
	return paths, nil
}

