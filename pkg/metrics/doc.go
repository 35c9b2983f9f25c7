// Package metrics exports Prometheus counters for range validation errors.
//
// The collector plugs into the rangeslider error chain:
//
//	c := metrics.New(metrics.WithRegistry(reg))
//	root, _ := rangeslider.New(cfg, rangeslider.WithErrorHandler(c.ErrorHandler(nil)))
//
// Errors escalated from children reach the root handler, so one collector
// on the root covers the whole tree. The level label tells them apart.
package metrics
