package copernicus_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/interface/catalog/copernicus"
)

var _ = Describe("DescribeCollection", func() {
	var (
		ctx      = context.Background()
		server   *mockCatalogue
		provider *copernicus.Provider
	)

	BeforeEach(func() {
		server = newMockCatalogue(0)
		provider = &copernicus.Provider{BaseURL: server.URL}
	})

	AfterEach(func() {
		server.Close()
	})

	get := func(tds entities.TermDescriptors, name string) entities.TermDescriptor {
		td, _ := tds.Get(name)
		return td
	}

	builtins := []string{"contentDateEnd", "contentDateStart", "geometry", "name", "publicationDate"}

	It("should merge the server attributes with the builtin terms", func() {
		tds, err := provider.DescribeCollection(ctx, "SENTINEL-2", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(tds.Names()).To(Equal([]string{"cloudCover", "contentDateEnd", "contentDateStart", "geometry",
			"name", "newAttribute", "productType", "publicationDate", "untyped"}))
		Expect(get(tds, "cloudCover")).To(Equal(entities.TermDescriptor{Name: "cloudCover", Type: "Double", Title: "Cloud cover percentage (0-100)"}))
		Expect(get(tds, "newAttribute")).To(Equal(entities.TermDescriptor{Name: "newAttribute", Type: "Integer"}))
		Expect(get(tds, "untyped")).To(Equal(entities.TermDescriptor{Name: "untyped", Type: "String"}))
		td, _ := tds.Get("contentDateStart")
		Expect(td.Example).To(Equal("2024-01-01 or 2024-01-01T00:00:00Z"))
		Expect(td.Title).To(Equal("Acquisition start date"))
		// declared locally but not by the server
		_, ok := tds.Get("tileId")
		Expect(ok).To(BeFalse())
	})

	It("should fall back to the local registry", func() {
		tds, err := provider.DescribeCollection(ctx, "SENTINEL-1", nil)
		Expect(err).NotTo(HaveOccurred())
		for _, name := range append(builtins, "sliceProductFlag", "orbitDirection") {
			_, ok := tds.Get(name)
			Expect(ok).To(BeTrue(), name)
		}
		Expect(get(tds, "sliceProductFlag")).To(Equal(entities.TermDescriptor{Name: "sliceProductFlag", Type: "Boolean"}))
		Expect(get(tds, "orbitDirection")).To(Equal(entities.TermDescriptor{Name: "orbitDirection", Type: "String", Title: "Orbit direction (ASCENDING or DESCENDING)"}))
		_, ok := tds.Get("tileId")
		Expect(ok).To(BeFalse())
		names := tds.Names()
		for i := 1; i < len(names); i++ {
			Expect(names[i-1] < names[i]).To(BeTrue())
		}
	})

	It("should fail on an unknown collection", func() {
		_, err := provider.DescribeCollection(ctx, "UNKNOWN", nil)
		Expect(errors.Is(err, copernicus.ErrCollectionNotFound)).To(BeTrue())
	})

	It("should fall back when the catalogue is unreachable", func() {
		server.Close()
		tds, err := provider.DescribeCollection(ctx, "SENTINEL-2", nil)
		Expect(err).NotTo(HaveOccurred())
		_, ok := tds.Get("tileId")
		Expect(ok).To(BeTrue())
	})
})
