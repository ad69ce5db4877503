package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
	"github.com/airbusgeo/cdse-catalog/catalog/filter"
	"github.com/airbusgeo/cdse-catalog/interface/catalog/copernicus"
	"github.com/airbusgeo/cdse-catalog/service/log"
)

const (
	limitField  = "limit"
	expandField = "expand"
)

func (c *Catalog) AddHandler(r *mux.Router) {
	r.HandleFunc("/catalog/search-terms", c.SearchTermsHandler).Methods("GET")
	r.HandleFunc("/catalog/collections/{collection}/search-terms", c.SearchTermsHandler).Methods("GET")
	r.HandleFunc("/catalog/collections/{collection}/products", c.ProductsHandler).Methods("GET")
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, filter.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, copernicus.ErrCollectionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, req *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Logger(req.Context()).Sugar().Warnf("catalog.writeJSON: %v", err)
	}
}

// searchTermsFromQuery reads the search terms from the url query, sorted by key.
// limit and expand are not search terms.
func searchTermsFromQuery(req *http.Request) entities.SearchTerms {
	values := req.URL.Query()
	keys := make([]string, 0, len(values))
	for k := range values {
		if k != limitField && k != expandField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var terms entities.SearchTerms
	for _, k := range keys {
		terms = terms.With(k, entities.String(values.Get(k)))
	}
	return terms
}

// SearchTermsHandler lists the builtin search terms or the search terms of a collection
func (c *Catalog) SearchTermsHandler(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	tds, err := c.SearchTerms(ctx, mux.Vars(req)["collection"])
	if err != nil {
		log.Logger(ctx).Sugar().Warnf("catalog.SearchTermsHandler.%v", err)
		w.WriteHeader(statusOf(err))
		fmt.Fprintf(w, "%v", err)
		return
	}
	writeJSON(w, req, tds)
}

// ProductsHandler lists the products of a collection matching the search terms given as url parameters
func (c *Catalog) ProductsHandler(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var limit int
	if l := req.FormValue(limitField); l != "" {
		var err error
		if limit, err = strconv.Atoi(l); err != nil || limit < 0 {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "invalid limit '%s'", l)
			return
		}
	}
	expand, _ := strconv.ParseBool(req.FormValue(expandField))

	products, err := c.Products(ctx, mux.Vars(req)["collection"], searchTermsFromQuery(req), limit, expand)
	if err != nil {
		log.Logger(ctx).Sugar().Warnf("catalog.ProductsHandler.%v", err)
		w.WriteHeader(statusOf(err))
		fmt.Fprintf(w, "%v", err)
		return
	}
	writeJSON(w, req, products)
}
