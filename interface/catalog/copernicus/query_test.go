package copernicus_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/catalog/filter"
	"github.com/airbusgeo/cdse-catalog/interface/catalog/copernicus"
)

var _ = Describe("FeatureQuery", func() {
	var (
		ctx      context.Context
		server   *mockCatalogue
		provider *copernicus.Provider
		logs     *observer.ObservedLogs
		logger   *zap.Logger
		terms    entities.SearchTerms
		query    *copernicus.FeatureQuery
		err      error
	)

	BeforeEach(func() {
		ctx = context.Background()
		server = newMockCatalogue(47)
		provider = &copernicus.Provider{BaseURL: server.URL, MaxAttempts: 10}
		var core zapcore.Core
		core, logs = observer.New(zap.DebugLevel)
		logger = zap.New(core)
		terms = entities.NewSearchTerms(entities.Term{Key: "top", Value: entities.Int(10)})
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		query, err = provider.QueryFeatures(ctx, "SENTINEL-2", terms, copernicus.WithLogger(logger))
	})

	Context("with a 5-page catalogue", func() {
		It("should return the declared count", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(server.Requests()).To(BeEmpty())
			n, err := query.Len(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(47))
			Expect(query.Fetched()).To(Equal(10))
			n, _ = query.Len(ctx)
			Expect(n).To(Equal(47))
			Expect(server.Requests()).To(HaveLen(1))
		})

		It("should iterate over all the products, twice, without fetching them twice", func() {
			var first, second []string
			for i, p := range query.All(ctx) {
				Expect(i).To(Equal(len(first)))
				first = append(first, p.Name())
			}
			Expect(first).To(HaveLen(47))
			Expect(server.Requests()).To(HaveLen(5))

			it := query.Iter(ctx)
			for it.Next() {
				second = append(second, it.Product().Name())
			}
			Expect(it.Err()).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
			Expect(server.Requests()).To(HaveLen(5))
			Expect(query.Exhausted()).To(BeTrue())
			n, _ := query.Len(ctx)
			Expect(n).To(Equal(47))
		})

		It("should fetch only the pages needed for random access", func() {
			p, err := query.Get(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name()).To(Equal("PRODUCT_00"))
			Expect(query.Fetched()).To(Equal(10))

			p, _ = query.Get(ctx, 13)
			Expect(p.Name()).To(Equal("PRODUCT_13"))
			Expect(query.Fetched()).To(Equal(20))

			p, _ = query.Get(ctx, 2)
			Expect(p.Name()).To(Equal("PRODUCT_02"))
			Expect(query.Fetched()).To(Equal(20))

			p, _ = query.Get(ctx, 34)
			Expect(p.Name()).To(Equal("PRODUCT_34"))
			Expect(query.Fetched()).To(Equal(40))
			Expect(server.Requests()).To(HaveLen(4))

			_, err = query.Get(ctx, 47)
			Expect(errors.Is(err, copernicus.ErrIndexOutOfRange)).To(BeTrue())
			Expect(query.Fetched()).To(Equal(47))
			_, err = query.Get(ctx, -1)
			Expect(errors.Is(err, copernicus.ErrIndexOutOfRange)).To(BeTrue())
			Expect(server.Requests()).To(HaveLen(5))
		})

		It("should fetch a far index first, then a near one from the cache", func() {
			p, err := query.Get(ctx, 34)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name()).To(Equal("PRODUCT_34"))
			Expect(query.Fetched()).To(Equal(40))
			p, _ = query.Get(ctx, 2)
			Expect(p.Name()).To(Equal("PRODUCT_02"))
			Expect(server.Requests()).To(HaveLen(4))
		})

		It("should inject the collection in every product", func() {
			for _, p := range query.All(ctx) {
				Expect(p.Collection()).To(Equal("SENTINEL-2"))
				Expect(p[entities.ProductCollection]).To(Equal("SENTINEL-2"))
			}
		})

		It("should request the count on the first page only", func() {
			for range query.All(ctx) {
			}
			requests := server.Requests()
			Expect(requests[0]).To(ContainSubstring("$count=true"))
			for _, r := range requests[1:] {
				Expect(r).NotTo(ContainSubstring("count"))
			}
		})
	})

	Context("building the first url", func() {
		BeforeEach(func() {
			terms = entities.NewSearchTerms(
				entities.Term{Key: "top", Value: entities.String("10")},
				entities.Term{Key: "skip", Value: entities.Int(5)})
		})
		It("should encode the filter and the pagination", func() {
			query, err = provider.QueryFeatures(ctx, "SENTINEL-2", terms, copernicus.WithExpandAttributes(true))
			Expect(err).NotTo(HaveOccurred())
			_, err = query.Get(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(server.Requests()[0]).To(Equal(
				"$filter=Collection/Name%20eq%20%27SENTINEL-2%27&$top=10&$orderby=ContentDate/Start%20asc&$skip=5&$count=true&$expand=Attributes"))
		})
	})

	Context("with a page size above the maximum", func() {
		BeforeEach(func() {
			terms = entities.NewSearchTerms(entities.Term{Key: "top", Value: entities.Int(5000)})
		})
		It("should clamp it with a warning", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(logs.FilterMessageSnippet("Maximum 'top' value is 1000").Len()).To(Equal(1))
			n, _ := query.Len(ctx)
			Expect(n).To(Equal(47))
			Expect(server.Requests()[0]).To(ContainSubstring("$top=1000&"))
			Expect(query.Fetched()).To(Equal(47))
		})
	})

	Context("in count-only mode", func() {
		BeforeEach(func() {
			terms = entities.NewSearchTerms(entities.Term{Key: "top", Value: entities.Int(0)})
		})
		It("should fetch the count and never follow the next link", func() {
			n, err := query.Len(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(47))
			Expect(query.Exhausted()).To(BeTrue())
			count := 0
			for range query.All(ctx) {
				count++
			}
			Expect(count).To(Equal(0))
			Expect(server.Requests()).To(HaveLen(1))
		})
	})

	Context("with invalid search terms", func() {
		It("should fail before any request", func() {
			for _, st := range []entities.SearchTerms{
				entities.NewSearchTerms(entities.Term{Key: "unknownAttribute", Value: entities.String("x")}),
				entities.NewSearchTerms(entities.Term{Key: "maxRecords", Value: entities.Int(10)}),
				entities.NewSearchTerms(entities.Term{Key: "top", Value: entities.Float(10)}),
				entities.NewSearchTerms(entities.Term{Key: "top", Value: entities.String("ten")}),
				entities.NewSearchTerms(entities.Term{Key: "skip", Value: entities.Int(-1)}),
			} {
				_, err := provider.QueryFeatures(ctx, "SENTINEL-2", st)
				Expect(errors.Is(err, filter.ErrValidation)).To(BeTrue(), "%v: %v", st, err)
			}
			Expect(server.Requests()).To(BeEmpty())
		})
	})

	Context("when a page keeps failing", func() {
		BeforeEach(func() {
			server.Fail = func(skip, attempt int) int {
				if skip == 20 {
					return 500
				}
				return 0
			}
		})
		It("should truncate the results, keep the fetched pages and log an error", func() {
			var names []string
			it := query.Iter(ctx)
			for it.Next() {
				names = append(names, it.Product().Name())
			}
			Expect(it.Err()).NotTo(HaveOccurred())
			Expect(names).To(HaveLen(20))
			Expect(names[19]).To(Equal("PRODUCT_19"))
			Expect(query.Exhausted()).To(BeTrue())
			n, _ := query.Len(ctx)
			Expect(n).To(Equal(47))

			Expect(server.Requests()).To(HaveLen(2 + 10))
			Expect(logs.FilterMessage("Status code 500, retrying..").Len()).To(Equal(10))
			errs := logs.FilterLevelExact(zap.ErrorLevel).All()
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Message).To(Equal("Failed to fetch features after 10 attempts"))

			_, err := query.Get(ctx, 20)
			Expect(errors.Is(err, copernicus.ErrIndexOutOfRange)).To(BeTrue())
			Expect(server.Requests()).To(HaveLen(12))
		})
	})

	Context("when a page fails transiently", func() {
		BeforeEach(func() {
			server.Fail = func(skip, attempt int) int {
				switch {
				case skip == 10 && attempt <= 2:
					return 503
				case skip == 30 && attempt == 1:
					return truncatedBody
				}
				return 0
			}
		})
		It("should retry and return all the products", func() {
			count := 0
			for range query.All(ctx) {
				count++
			}
			Expect(count).To(Equal(47))
			Expect(server.Requests()).To(HaveLen(5 + 2 + 1))
			Expect(logs.FilterLevelExact(zap.WarnLevel).Len()).To(Equal(3))
			Expect(logs.FilterLevelExact(zap.ErrorLevel).Len()).To(Equal(0))
		})
	})

	Context("when the catalogue answers garbage", func() {
		BeforeEach(func() {
			server.Fail = func(skip, attempt int) int {
				if skip == 10 {
					return invalidJSON
				}
				return 0
			}
		})
		It("should not retry", func() {
			count := 0
			for range query.All(ctx) {
				count++
			}
			Expect(count).To(Equal(10))
			Expect(server.Requests()).To(HaveLen(2))
			Expect(logs.FilterMessage("Failed to fetch features after 1 attempts").Len()).To(Equal(1))
		})
	})

	Context("when the connection is closed before the response", func() {
		BeforeEach(func() {
			server.Fail = func(skip, attempt int) int {
				if skip == 0 && attempt == 1 {
					return closedConn
				}
				return 0
			}
		})
		It("should retry immediately and return all the products", func() {
			count := 0
			for range query.All(ctx) {
				count++
			}
			Expect(count).To(Equal(47))
			Expect(server.Requests()).To(HaveLen(5 + 1))
			Expect(logs.FilterLevelExact(zap.WarnLevel).Len()).To(Equal(1))
			Expect(logs.FilterLevelExact(zap.ErrorLevel).Len()).To(Equal(0))
		})
	})

	Context("when the response is malformed", func() {
		BeforeEach(func() {
			server.Fail = func(skip, attempt int) int {
				if skip == 20 && attempt == 1 {
					return badStatusLine
				}
				return 0
			}
		})
		It("should retry immediately and return all the products", func() {
			count := 0
			for range query.All(ctx) {
				count++
			}
			Expect(count).To(Equal(47))
			Expect(server.Requests()).To(HaveLen(5 + 1))
			warnings := logs.FilterLevelExact(zap.WarnLevel).All()
			Expect(warnings).To(HaveLen(1))
			Expect(warnings[0].Message).To(ContainSubstring("malformed HTTP status code"))
			Expect(logs.FilterLevelExact(zap.ErrorLevel).Len()).To(Equal(0))
		})
	})

	Context("when the count is not in the response", func() {
		BeforeEach(func() {
			server.Fail = func(skip, attempt int) int {
				return missingCount
			}
		})
		It("should log an error, return ErrUnknownCount and keep the products", func() {
			_, err := query.Len(ctx)
			Expect(errors.Is(err, copernicus.ErrUnknownCount)).To(BeTrue())
			Expect(err.Error()).To(HavePrefix("Len: "))
			errs := logs.FilterLevelExact(zap.ErrorLevel).All()
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Message).To(Equal("Total result count not present in response."))

			count := 0
			for range query.All(ctx) {
				count++
			}
			Expect(count).To(Equal(47))
			Expect(server.Requests()).To(HaveLen(5))
			Expect(logs.FilterMessage("Total result count not present in response.").Len()).To(Equal(1))
		})
	})

	Context("when every attempt on the first page fails", func() {
		BeforeEach(func() {
			server.Fail = func(skip, attempt int) int {
				return 404
			}
			provider.MaxAttempts = 2
		})
		It("should return ErrUnknownCount", func() {
			_, err := query.Len(ctx)
			Expect(errors.Is(err, copernicus.ErrUnknownCount)).To(BeTrue())
			Expect(query.Exhausted()).To(BeTrue())
			Expect(server.Requests()).To(HaveLen(2))
		})
	})

	Context("when the context is cancelled during a backoff", func() {
		BeforeEach(func() {
			provider.RetryDelay = time.Hour
			server.Fail = func(skip, attempt int) int {
				if skip == 10 {
					return 502
				}
				return 0
			}
		})
		It("should return the error without truncating", func() {
			_, err := query.Get(ctx, 0)
			Expect(err).NotTo(HaveOccurred())

			cctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
			defer cancel()
			_, err = query.Get(cctx, 10)
			Expect(errors.Is(err, context.DeadlineExceeded)).To(BeTrue())
			Expect(query.Exhausted()).To(BeFalse())
			Expect(query.Fetched()).To(Equal(10))
		})
	})
})
