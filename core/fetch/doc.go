// Package fetch retrieves raw furnidata payloads over HTTP.
//
// The client always sends a desktop browser user agent and follows redirects
// itself (301, 302, 303, 307 and 308) so the header is repeated on every hop.
// A redirect without a Location header, a final non-2xx status or a transport
// failure is returned as an error; the body is read whole and returned as text.
//
// # Usage
//
//	client := fetch.NewClient(cfg.Fetch)
//	raw, err := client.Fetch(ctx, "https://www.habbo.com/gamedata/furnidata_xml/1")
package fetch
