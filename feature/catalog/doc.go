// Package catalog implements the furnidata feature: loading a payload from a
// URL or from object storage, decoding it with core/furnidata and answering
// queries about the result.
//
// # Sources
//
// A source is an http(s) URL, fetched with core/fetch, or any other string,
// read as an object key from the configured bucket. An empty source falls back
// to fetch.url, then storage.object.
//
// # HTTP Endpoints
//
//   - GET  /furnidata?source=              : every decoded item
//   - GET  /furnidata/summary?source=      : counts per kind, rares, furni lines
//   - GET  /furnidata/sources              : object keys next to the default object
//   - GET  /furnidata/items/:identifier    : lookup by id or name, with suggestions
//   - POST /furnidata/decode               : decode the request body
package catalog
