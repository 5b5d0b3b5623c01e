package batch

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/sitegen-cli/internal/model"
)

// Input is the normalized form of whatever the caller handed us: a
// structured record when the input was JSON, otherwise free text.
type Input struct {
	Description string
	Record      *model.RawBusinessRecord
}

// ResolveInput accepts an inline JSON object, a path to a JSON or text
// file, or free-form text, and normalizes all three into one Input.
func ResolveInput(arg string) (Input, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return Input{}, eris.New("batch: empty input")
	}

	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return Input{}, eris.Wrap(err, "batch: read input file")
		}
		return normalizeText(string(data)), nil
	}
	return normalizeText(arg), nil
}

func normalizeText(text string) Input {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "{") {
		var rec model.RawBusinessRecord
		if err := json.Unmarshal([]byte(text), &rec); err == nil && rec.Name != "" {
			return Input{Description: text, Record: &rec}
		}
	}
	return Input{Description: text}
}
