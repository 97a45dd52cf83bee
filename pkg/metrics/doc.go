// Package metrics exposes verification results as Prometheus metrics so a
// long-running watch process can be scraped and alerted on.
package metrics
