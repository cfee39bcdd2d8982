package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/you-humble/knowledge-archive/internal/model"
)

const (
	fieldName     = "name_lc"
	fieldCategory = "category_lc"
	fieldType     = "type_lc"
	fieldCarIDs   = "car_ids"
	fieldPosition = "position"

	indexBatchSize = 500
)

// document is what the index stores per part. Text fields hold the
// lower-cased labels shown in the dialog so wildcard queries act as a
// case-insensitive substring prefilter.
type document struct {
	Name     string   `json:"name_lc"`
	Category string   `json:"category_lc"`
	Type     string   `json:"type_lc"`
	CarIDs   []string `json:"car_ids"`
	Position float64  `json:"position"`
}

func buildMapping() *mapping.IndexMappingImpl {
	im := bleve.NewIndexMapping()

	kw := func() *mapping.FieldMapping {
		fm := bleve.NewTextFieldMapping()
		fm.Analyzer = keyword.Name
		fm.Store = false
		fm.IncludeTermVectors = false
		fm.IncludeInAll = false
		return fm
	}

	pos := bleve.NewNumericFieldMapping()
	pos.Store = false
	pos.IncludeInAll = false

	doc := bleve.NewDocumentStaticMapping()
	doc.AddFieldMappingsAt(fieldName, kw())
	doc.AddFieldMappingsAt(fieldCategory, kw())
	doc.AddFieldMappingsAt(fieldType, kw())
	doc.AddFieldMappingsAt(fieldCarIDs, kw())
	doc.AddFieldMappingsAt(fieldPosition, pos)

	im.DefaultMapping = doc
	im.DefaultAnalyzer = keyword.Name
	return im
}

func newIndex(ctx context.Context, parts []*model.Part) (bleve.Index, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	if err := indexParts(ctx, idx, parts); err != nil {
		_ = idx.Close()
		return nil, err
	}
	return idx, nil
}

func indexParts(ctx context.Context, idx bleve.Index, parts []*model.Part) error {
	batch := idx.NewBatch()
	for i, p := range parts {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := batch.Index(p.ID, toDocument(p, i)); err != nil {
			return fmt.Errorf("index part %s: %w", p.ID, err)
		}

		if batch.Size() >= indexBatchSize {
			if err := idx.Batch(batch); err != nil {
				return fmt.Errorf("execute batch: %w", err)
			}
			batch = idx.NewBatch()
		}
	}

	if batch.Size() > 0 {
		if err := idx.Batch(batch); err != nil {
			return fmt.Errorf("execute final batch: %w", err)
		}
	}
	return nil
}

func toDocument(p *model.Part, position int) document {
	return document{
		Name:     strings.ToLower(itemName(p)),
		Category: strings.ToLower(itemCategory(p)),
		Type:     strings.ToLower(itemType),
		CarIDs:   p.CarIDs,
		Position: float64(position),
	}
}
