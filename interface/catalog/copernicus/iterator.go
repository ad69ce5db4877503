package copernicus

import (
	"context"
	"errors"
	"iter"

	"github.com/airbusgeo/cdse-catalog/catalog/entities"
)

// FeatureIterator iterates over the products of a FeatureQuery from the first one.
// All the iterators of a query share its cache.
//
//	it := q.Iter(ctx)
//	for it.Next() {
//		p := it.Product()
//	}
//	if err := it.Err(); err != nil {
//	}
type FeatureIterator struct {
	ctx     context.Context
	q       *FeatureQuery
	index   int
	product entities.Product
	err     error
}

// Iter returns a new iterator positioned before the first product
func (q *FeatureQuery) Iter(ctx context.Context) *FeatureIterator {
	return &FeatureIterator{ctx: ctx, q: q, index: -1}
}

// Next advances to the next product, fetching a page if needed. It returns false at the end or on error.
func (it *FeatureIterator) Next() bool {
	if it.err != nil {
		return false
	}
	p, err := it.q.Get(it.ctx, it.index+1)
	if err != nil {
		if !errors.Is(err, ErrIndexOutOfRange) {
			it.err = err
		}
		it.product = nil
		return false
	}
	it.index++
	it.product = p
	return true
}

// Product returns the current product
func (it *FeatureIterator) Product() entities.Product { return it.product }

// Index returns the position of the current product
func (it *FeatureIterator) Index() int { return it.index }

// Err returns the error that stopped the iteration, if any
func (it *FeatureIterator) Err() error { return it.err }

// All returns a restartable sequence of the products and their index.
// The sequence stops on error: use Iter to retrieve it.
func (q *FeatureQuery) All(ctx context.Context) iter.Seq2[int, entities.Product] {
	return func(yield func(int, entities.Product) bool) {
		it := q.Iter(ctx)
		for it.Next() {
			if !yield(it.Index(), it.Product()) {
				return
			}
		}
	}
}
