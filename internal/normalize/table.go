package normalize

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/sitegen-cli/internal/model"
)

var knownVerticals = map[model.Vertical]bool{
	model.VerticalPlumbing:    true,
	model.VerticalHVAC:        true,
	model.VerticalElectrical:  true,
	model.VerticalRoofing:     true,
	model.VerticalLandscaping: true,
	model.VerticalPainting:    true,
	model.VerticalFlooring:    true,
	model.VerticalPestControl: true,
}

// LoadCategoryTable reads a category-to-vertical table from a YAML file and
// merges it over the built-in defaults, so deployments can add keywords
// without rebuilding. Entries naming an unknown vertical are rejected.
func LoadCategoryTable(path string) (map[string]model.Vertical, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "normalize: read category table %s", path)
	}

	var wrapper struct {
		Categories map[string]string `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "normalize: parse category table")
	}

	table := make(map[string]model.Vertical, len(defaultCategoryTable)+len(wrapper.Categories))
	for k, v := range defaultCategoryTable {
		table[k] = v
	}
	for keyword, vertical := range wrapper.Categories {
		v := model.Vertical(strings.ToLower(strings.TrimSpace(vertical)))
		if !knownVerticals[v] {
			return nil, eris.Errorf("normalize: unknown vertical %q for category %q", vertical, keyword)
		}
		table[strings.ToLower(strings.TrimSpace(keyword))] = v
	}
	return table, nil
}
