package fetch

// DefaultUserAgent is the desktop browser identity sent with every request.
// Some hotels reject requests that do not look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config holds configuration for retrieving furnidata over HTTP.
type Config struct {
	// URL is the default furnidata location used when a request names no source.
	URL string `mapstructure:"url" default:""`
	// UserAgent is sent on the first request and on every redirect.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
	// TimeoutSeconds bounds connection setup and the whole request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxRedirects is the number of redirects followed before giving up.
	MaxRedirects int `mapstructure:"max_redirects" default:"10"`
}
