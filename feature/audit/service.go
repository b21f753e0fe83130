package audit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"furnidata-manager/feature/catalog"
	"furnidata-manager/feature/emulator/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Catalogs loads decoded furnidata. *catalog.Service implements it.
type Catalogs interface {
	Load(ctx context.Context, source string) (*catalog.Catalog, error)
}

// Service cross-checks furnidata against the emulator furniture table.
type Service struct {
	catalogs Catalogs
	db       *gorm.DB
	emulator string
	logger   *zap.Logger
}

// NewService creates an audit service. db may be nil, in which case every
// call returns ErrNoDatabase.
func NewService(catalogs Catalogs, db *gorm.DB, emulator string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalogs: catalogs,
		db:       db,
		emulator: emulator,
		logger:   logger,
	}
}

// Enabled reports whether a database is attached.
func (s *Service) Enabled() bool {
	return s.db != nil
}

// Schema checks the emulator table against its row model.
func (s *Service) Schema(ctx context.Context) (*SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return CheckSchema(s.db.WithContext(ctx), s.emulator)
}

// Audit loads source and the emulator rows concurrently and compares them by
// sprite id. Alias clones are not compared.
func (s *Service) Audit(ctx context.Context, source string) (*Report, error) {
	emulator, err := s.checkReady()
	if err != nil {
		return nil, err
	}

	var (
		cat  *catalog.Catalog
		rows []models.DBItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.catalogs.Load(gctx, source)
		if err != nil {
			return err
		}
		cat = c
		return nil
	})
	g.Go(func() error {
		r, err := s.loadRows(gctx, emulator)
		if err != nil {
			return err
		}
		rows = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Source:   cat.Source,
		Format:   cat.Format,
		Emulator: emulator,
	}
	compare(report, cat.Decoded(), rows)

	s.logger.Info("Audit completed",
		zap.String("source", cat.Source.Location),
		zap.String("emulator", emulator),
		zap.Int("furnidata_items", report.FurnidataItems),
		zap.Int("database_items", report.DatabaseItems),
		zap.Int("mismatches", len(report.Mismatches)),
	)
	return report, nil
}

// Item returns the catalog entries and the emulator row for one identifier.
// When neither side knows it the error is a *catalog.NotFoundError.
func (s *Service) Item(ctx context.Context, source, identifier string) (*ItemReport, error) {
	emulator, err := s.checkReady()
	if err != nil {
		return nil, err
	}

	cat, err := s.catalogs.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	report := &ItemReport{
		Identifier: identifier,
		Emulator:   emulator,
		Furnidata:  catalog.Match(cat.Items, identifier),
		Mismatches: []string{},
	}

	row, err := s.findRow(ctx, emulator, identifier)
	if err != nil {
		return nil, err
	}
	if row == nil && len(report.Furnidata) > 0 {
		// Fall back to the sprite id of the catalog entry, so a renamed row is still paired.
		row, err = s.findRow(ctx, emulator, strconv.Itoa(report.Furnidata[0].ID))
		if err != nil {
			return nil, err
		}
	}
	report.Database = row

	if row == nil && len(report.Furnidata) == 0 {
		return nil, &catalog.NotFoundError{
			Identifier:  identifier,
			Suggestions: catalog.Suggest(cat.Items, identifier, catalog.MaxSuggestions),
		}
	}

	switch {
	case row == nil:
		report.Mismatches = append(report.Mismatches, fmt.Sprintf("ID %d: missing in database", report.Furnidata[0].ID))
	case len(report.Furnidata) == 0:
		report.Mismatches = append(report.Mismatches, fmt.Sprintf("sprite %d (%s): missing in furnidata", row.SpriteID, row.ItemName))
	default:
		report.Mismatches = append(report.Mismatches, compareItem(report.Furnidata[0], *row)...)
	}

	return report, nil
}

func (s *Service) checkReady() (string, error) {
	if s.db == nil {
		return "", ErrNoDatabase
	}
	return models.Normalize(s.emulator)
}

// loadRows verifies the schema and reads every emulator row.
func (s *Service) loadRows(ctx context.Context, emulator string) ([]models.DBItem, error) {
	db := s.db.WithContext(ctx)

	schema, err := CheckSchema(db, emulator)
	if err != nil {
		return nil, err
	}
	if !schema.Matched {
		return nil, schemaError(schema)
	}

	switch emulator {
	case models.EmulatorComet:
		return findRows[models.CometFurniture](db)
	case models.EmulatorPlus:
		return findRows[models.PlusFurniture](db)
	default:
		return findRows[models.ArcturusItemsBase](db)
	}
}

// findRow looks an identifier up by sprite id when numeric, otherwise by
// item or public name. It returns nil without error when nothing matches.
func (s *Service) findRow(ctx context.Context, emulator, identifier string) (*models.DBItem, error) {
	db := s.db.WithContext(ctx)
	identifier = strings.TrimSpace(identifier)

	var query *gorm.DB
	if id, err := strconv.Atoi(identifier); err == nil {
		query = db.Where("sprite_id = ?", id)
	} else {
		query = db.Where("item_name = ? OR public_name = ?", identifier, identifier)
	}

	switch emulator {
	case models.EmulatorComet:
		return firstRow[models.CometFurniture](query)
	case models.EmulatorPlus:
		return firstRow[models.PlusFurniture](query)
	default:
		return firstRow[models.ArcturusItemsBase](query)
	}
}

func findRows[T models.Row](db *gorm.DB) ([]models.DBItem, error) {
	var rows []T
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load emulator furniture: %w", err)
	}
	items := make([]models.DBItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.ToNormalized())
	}
	return items, nil
}

func firstRow[T models.Row](query *gorm.DB) (*models.DBItem, error) {
	var row T
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up emulator furniture: %w", err)
	}
	item := row.ToNormalized()
	return &item, nil
}
