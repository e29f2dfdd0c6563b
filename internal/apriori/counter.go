package apriori

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/fpeterek/strojove-uceni/internal/model"
)

// SupportCounter counts the transactions that are supersets of an itemset.
// Implementations must be safe for concurrent Count calls.
type SupportCounter[T model.Item] interface {
	// Count returns the number of transactions containing every item of s.
	Count(s model.Itemset[T]) int
	// Len returns the number of transactions.
	Len() int
}

// NewCounter returns the counter selected by idx, wrapped in a cache.
func NewCounter[T model.Item](ds model.Dataset[T], idx Index) SupportCounter[T] {
	if idx == IndexScan {
		return NewCachingCounter(NewScanCounter(ds))
	}
	return NewCachingCounter(NewBitmapCounter(ds))
}

// ScanCounter rescans the whole dataset on every query.
type ScanCounter[T model.Item] struct {
	ds model.Dataset[T]
}

// NewScanCounter wraps ds without copying it.
func NewScanCounter[T model.Item](ds model.Dataset[T]) *ScanCounter[T] {
	return &ScanCounter[T]{ds: ds}
}

// Count implements SupportCounter.
func (c *ScanCounter[T]) Count(s model.Itemset[T]) int {
	n := 0
	for _, txn := range c.ds {
		if txn.ContainsAll(s) {
			n++
		}
	}
	return n
}

// Len implements SupportCounter.
func (c *ScanCounter[T]) Len() int {
	return c.ds.Len()
}

// BitmapCounter keeps, for every item, the bitmap of transaction indices
// containing it. The support count of an itemset is the cardinality of the
// intersection of its items' bitmaps.
type BitmapCounter[T model.Item] struct {
	tids map[T]*roaring.Bitmap
	n    int
}

// NewBitmapCounter indexes ds. The bitmaps are read-only afterwards.
func NewBitmapCounter[T model.Item](ds model.Dataset[T]) *BitmapCounter[T] {
	tids := make(map[T]*roaring.Bitmap)
	for i, txn := range ds {
		for _, item := range txn.Items() {
			bm, ok := tids[item]
			if !ok {
				bm = roaring.New()
				tids[item] = bm
			}
			bm.Add(uint32(i))
		}
	}
	for _, bm := range tids {
		bm.RunOptimize()
	}
	return &BitmapCounter[T]{tids: tids, n: ds.Len()}
}

// Count implements SupportCounter.
func (c *BitmapCounter[T]) Count(s model.Itemset[T]) int {
	if s.IsEmpty() {
		return c.n
	}

	bms := make([]*roaring.Bitmap, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		bm, ok := c.tids[s.At(i)]
		if !ok {
			return 0
		}
		bms = append(bms, bm)
	}

	switch len(bms) {
	case 1:
		return int(bms[0].GetCardinality())
	case 2:
		return int(bms[0].AndCardinality(bms[1]))
	default:
		return int(roaring.FastAnd(bms...).GetCardinality())
	}
}

// Len implements SupportCounter.
func (c *BitmapCounter[T]) Len() int {
	return c.n
}

// CachingCounter memoises counts by canonical itemset key.
type CachingCounter[T model.Item] struct {
	inner SupportCounter[T]
	cache map[string]int
	mu    sync.RWMutex
}

// NewCachingCounter wraps inner with a count cache.
func NewCachingCounter[T model.Item](inner SupportCounter[T]) *CachingCounter[T] {
	return &CachingCounter[T]{
		inner: inner,
		cache: make(map[string]int),
	}
}

// Count implements SupportCounter.
func (c *CachingCounter[T]) Count(s model.Itemset[T]) int {
	key := s.Key()

	c.mu.RLock()
	n, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return n
	}

	n = c.inner.Count(s)

	c.mu.Lock()
	c.cache[key] = n
	c.mu.Unlock()

	return n
}

// Len implements SupportCounter.
func (c *CachingCounter[T]) Len() int {
	return c.inner.Len()
}

// Cached returns the number of memoised itemsets.
func (c *CachingCounter[T]) Cached() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// support returns count/n, the shared definition used for every threshold
// and confidence computation.
func support(count, n int) float64 {
	return float64(count) / float64(n)
}
