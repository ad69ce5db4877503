package provider

import (
	"context"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
)

// ImageProvider is the interface of a product download service
type ImageProvider interface {
	// Download the product to localDir and returns its path (Path(product, localDir))
	Download(ctx context.Context, product entities.Product, localDir string) (string, error)

	// Path of the downloaded product in localDir
	Path(product entities.Product, localDir string) string

	// Name of the provider
	Name() string
}
