package catalog

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"furnidata-manager/core/fetch"
	"furnidata-manager/core/furnidata"
	"furnidata-manager/core/metrics"
	"furnidata-manager/core/storage"

	"go.uber.org/zap"
)

var (
	errNoFetcher = errors.New("http fetching is not configured")
	errNoStorage = errors.New("object storage is not configured")
)

// Defaults names the payload used when a request gives no source.
type Defaults struct {
	// URL is tried first.
	URL string
	// Bucket holds storage sources.
	Bucket string
	// Object is the storage key used when URL is empty.
	Object string
}

// Service loads and decodes furnidata payloads. Every call re-reads and
// re-decodes its source; nothing is cached.
type Service struct {
	fetcher  fetch.Fetcher
	store    storage.Client
	defaults Defaults
	decoder  *furnidata.Decoder
	metrics  *metrics.Recorder
	logger   *zap.Logger
}

// NewService creates a catalog service. fetcher or store may be nil when the
// matching source kind is not available. A nil decoder uses the defaults.
func NewService(fetcher fetch.Fetcher, store storage.Client, defaults Defaults, decoder *furnidata.Decoder, rec *metrics.Recorder, logger *zap.Logger) *Service {
	if decoder == nil {
		decoder = furnidata.NewDecoder()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher:  fetcher,
		store:    store,
		defaults: defaults,
		decoder:  decoder,
		metrics:  rec,
		logger:   logger,
	}
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

// Resolve turns a user supplied source into a location. http(s) URLs are
// fetched; anything else is an object key in the configured bucket.
func (s *Service) Resolve(source string) (Source, error) {
	location := strings.TrimSpace(source)
	if location == "" {
		location = s.defaults.URL
	}
	if location == "" {
		location = s.defaults.Object
	}
	if location == "" {
		return Source{}, ErrEmptySource
	}

	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return Source{Location: location, Kind: SourceHTTP}, nil
	}
	return Source{Location: location, Kind: SourceStorage}, nil
}

// Load reads and decodes source.
func (s *Service) Load(ctx context.Context, source string) (*Catalog, error) {
	src, err := s.Resolve(source)
	if err != nil {
		return nil, err
	}

	raw, err := s.read(ctx, src)
	if err != nil {
		s.metrics.SourceError(string(src.Kind))
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, src.Location, err)
	}

	return s.decode(src, raw), nil
}

// DecodeRaw decodes a payload supplied by the caller.
func (s *Service) DecodeRaw(raw string) *Catalog {
	return s.decode(Source{Location: "request", Kind: SourceInline}, raw)
}

// Summary loads source and returns its counts.
func (s *Service) Summary(ctx context.Context, source string) (*Summary, error) {
	c, err := s.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	return Summarize(c), nil
}

// Lookup loads source and returns the items matching identifier. Without a
// match the error is a *NotFoundError carrying suggestions.
func (s *Service) Lookup(ctx context.Context, source, identifier string) (*LookupResult, error) {
	c, err := s.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	matches := Match(c.Items, identifier)
	if len(matches) == 0 {
		return nil, &NotFoundError{
			Identifier:  identifier,
			Suggestions: Suggest(c.Items, identifier, MaxSuggestions),
		}
	}

	return &LookupResult{Source: c.Source, Identifier: identifier, Matches: matches}, nil
}

// Sources lists the object keys stored next to the default object.
func (s *Service) Sources(ctx context.Context) ([]string, error) {
	if s.store == nil {
		return nil, errNoStorage
	}

	prefix := path.Dir(s.defaults.Object)
	if prefix == "." || prefix == "/" {
		prefix = ""
	} else {
		prefix += "/"
	}

	keys, err := storage.ListKeys(ctx, s.store, s.defaults.Bucket, prefix)
	if err != nil {
		return nil, err
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

func (s *Service) read(ctx context.Context, src Source) (string, error) {
	switch src.Kind {
	case SourceHTTP:
		if s.fetcher == nil {
			return "", errNoFetcher
		}
		return s.fetcher.Fetch(ctx, src.Location)
	default:
		if s.store == nil {
			return "", errNoStorage
		}
		return storage.ReadObject(ctx, s.store, s.defaults.Bucket, src.Location)
	}
}

func (s *Service) decode(src Source, raw string) *Catalog {
	start := time.Now()
	res := s.decoder.Decode(raw)
	elapsed := time.Since(start)

	decoded := len(res.Items) - res.Aliased
	s.metrics.ObserveDecode(string(res.Format), decoded, res.Aliased, elapsed)
	s.logger.Info("Furnidata decoded",
		zap.String("source", src.Location),
		zap.String("kind", string(src.Kind)),
		zap.String("format", string(res.Format)),
		zap.Int("items", decoded),
		zap.Int("aliased", res.Aliased),
		zap.Duration("duration", elapsed),
	)

	return &Catalog{
		Source:  src,
		Format:  res.Format,
		Items:   res.Items,
		Aliased: res.Aliased,
	}
}
