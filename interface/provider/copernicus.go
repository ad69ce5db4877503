package provider

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/service/log"
)

// CopernicusDownloadURL is the download url of a product, given its Id
const CopernicusDownloadURL = "https://catalogue.dataspace.copernicus.eu/odata/v1/Products(%s)/$value"

// SessionFactory creates the authenticated HTTP sessions used to download the products
type SessionFactory interface {
	MakeSession(ctx context.Context, proxies map[string]string) (*http.Client, error)
}

// CopernicusImageProvider implements ImageProvider for the Copernicus Data Space
type CopernicusImageProvider struct {
	sessions    SessionFactory
	proxies     map[string]string
	downloadURL string
	extract     bool
}

// NewCopernicusImageProvider creates a new ImageProvider from Copernicus.
// downloadURL is a format with the product Id (CopernicusDownloadURL if empty).
// If extract is true, the downloaded zip is unarchived in the download directory.
func NewCopernicusImageProvider(sessions SessionFactory, proxies map[string]string, downloadURL string, extract bool) *CopernicusImageProvider {
	if downloadURL == "" {
		downloadURL = CopernicusDownloadURL
	}
	return &CopernicusImageProvider{sessions: sessions, proxies: proxies, downloadURL: downloadURL, extract: extract}
}

// Name implements ImageProvider
func (ip *CopernicusImageProvider) Name() string {
	return "Copernicus"
}

// Path implements ImageProvider
func (ip *CopernicusImageProvider) Path(product entities.Product, localDir string) string {
	if ip.extract {
		return filepath.Join(localDir, product.Name())
	}
	return filepath.Join(localDir, product.Name()+".zip")
}

// Download implements ImageProvider
func (ip *CopernicusImageProvider) Download(ctx context.Context, product entities.Product, localDir string) (string, error) {
	name := product.Name()
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("CopernicusImageProvider.Download: %w: name '%s'", ErrInvalidProduct, name)
	}
	id, err := product.UUID()
	if err != nil {
		return "", fmt.Errorf("CopernicusImageProvider.Download: %w: %v", ErrInvalidProduct, err)
	}

	client, err := ip.sessions.MakeSession(ctx, ip.proxies)
	if err != nil {
		return "", fmt.Errorf("CopernicusImageProvider.Download.%w", err)
	}

	localZip := filepath.Join(localDir, name+".zip")
	url := fmt.Sprintf(ip.downloadURL, id)
	log.Logger(ctx).Sugar().Debugf("downloading %s from %s", name, url)
	if err := download(ctx, client, url, localZip, ip.Name()+":"+name); err != nil {
		return "", fmt.Errorf("CopernicusImageProvider.%w", err)
	}

	if !ip.extract {
		return localZip, nil
	}
	defer os.Remove(localZip)
	if err := unarchive(localZip, localDir); err != nil {
		return "", fmt.Errorf("CopernicusImageProvider.Unarchive: %w", err)
	}
	return ip.Path(product, localDir), nil
}
