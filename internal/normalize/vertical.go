package normalize

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/sitegen-cli/internal/model"
)

// Classifier maps free-text business categories to verticals via a fixed
// lookup table. The table is injected at construction so the classifier is
// testable without ambient globals.
type Classifier struct {
	table map[string]model.Vertical
	keys  []string
}

// defaultCategoryTable maps lowercase category keywords to verticals.
var defaultCategoryTable = map[string]model.Vertical{
	"plumber":              model.VerticalPlumbing,
	"plumbing":             model.VerticalPlumbing,
	"drain":                model.VerticalPlumbing,
	"water heater":         model.VerticalPlumbing,
	"hvac":                 model.VerticalHVAC,
	"heating":              model.VerticalHVAC,
	"air conditioning":     model.VerticalHVAC,
	"furnace":              model.VerticalHVAC,
	"electrician":          model.VerticalElectrical,
	"electrical":           model.VerticalElectrical,
	"electric":             model.VerticalElectrical,
	"roofer":               model.VerticalRoofing,
	"roofing":              model.VerticalRoofing,
	"landscaper":           model.VerticalLandscaping,
	"landscaping":          model.VerticalLandscaping,
	"lawn care":            model.VerticalLandscaping,
	"lawn":                 model.VerticalLandscaping,
	"painter":              model.VerticalPainting,
	"painting":             model.VerticalPainting,
	"flooring":             model.VerticalFlooring,
	"floor installation":   model.VerticalFlooring,
	"carpet":               model.VerticalFlooring,
	"pest control":         model.VerticalPestControl,
	"exterminator":         model.VerticalPestControl,
	"pest":                 model.VerticalPestControl,
}

// NewClassifier builds a Classifier. A nil table uses the built-in default.
func NewClassifier(table map[string]model.Vertical) *Classifier {
	if table == nil {
		table = defaultCategoryTable
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Classifier{table: table, keys: keys}
}

// Classify returns the vertical for a free-text category. Lookup is
// case-insensitive and substring-based; anything unmatched falls back to
// the default vertical so an unknown category never blocks generation.
func (c *Classifier) Classify(category string) model.Vertical {
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == "" {
		return model.DefaultVertical
	}

	if v, ok := c.table[cat]; ok {
		return v
	}
	// Substring scan in sorted key order so a category matching several
	// keywords classifies the same way on every call.
	for _, key := range c.keys {
		if strings.Contains(cat, key) {
			return c.table[key]
		}
	}

	zap.L().Warn("unrecognized business category, using default vertical",
		zap.String("category", category),
		zap.String("default", string(model.DefaultVertical)),
	)
	return model.DefaultVertical
}
