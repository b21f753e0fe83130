// Package metrics exposes Prometheus counters for furnidata decoding.
//
// # Metrics
//
//   - furnidata_decodes_total{format}
//   - furnidata_items_decoded_total
//   - furnidata_aliases_synthesized_total
//   - furnidata_source_errors_total{kind}
//   - furnidata_decode_duration_seconds
//
// The start command mounts Handler on /metrics through the Fiber adaptor.
package metrics
