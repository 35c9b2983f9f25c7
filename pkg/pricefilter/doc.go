// Package pricefilter composes a catalog filter out of a price range and a
// sort order, with localized captions for both.
//
// The price range is a rangeslider.State. Given a root state, New creates
// the price range as its child so it inherits the root's absolute limits
// and escalates validation errors to it:
//
//	root, _ := rangeslider.New(rangeslider.Config{Max: 50000, Step: 100})
//	f, err := pricefilter.New(root, pricefilter.Config{
//		Price: rangeslider.Config{Min: 500, Max: 20000, Step: 50},
//		Sort:  pricefilter.SortPriceAsc,
//		Lang:  "ru",
//	})
//
// Without a root the range stands alone and the filter logs its errors
// unless WithErrorHandler is given.
//
// Captions are rendered with golang.org/x/text, so numbers are grouped the
// way the configured language expects ("От 1 000₽", "From 1,000₽").
package pricefilter
