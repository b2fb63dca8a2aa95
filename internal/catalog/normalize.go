package catalog

import (
	"encoding/json"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// shapeDecoder attempts to extract a flat model-ID list from one known
// response shape. It reports false when the shape does not apply.
type shapeDecoder struct {
	name   string
	decode func(v any) ([]string, bool)
}

// shapeDecoders is evaluated in strict priority order; the first decoder
// whose shape matches wins, regardless of whether a later one would have
// produced more entries.
var shapeDecoders = []shapeDecoder{
	{"array", decodeArray},
	{"models field", decodeField("models")},
	{"model_list field", decodeField("model_list")},
	{"data objects", decodeDataObjects},
	{"comma string", decodeCommaString},
}

// Normalize extracts a flat list of model identifiers from an untyped
// response body. It reports false when no known shape matches or the
// extracted list is empty. The first matching shape settles the outcome:
// an empty extraction degrades rather than trying lower-priority shapes.
func Normalize(body []byte) ([]string, bool) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, false
	}
	for _, d := range shapeDecoders {
		if ids, matched := d.decode(v); matched {
			return ids, len(ids) > 0
		}
	}
	return nil, false
}

// decodeArray handles a response body that is itself an array of IDs.
func decodeArray(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	return stringItems(arr), true
}

// decodeField handles an object carrying the ID array under a known key.
func decodeField(key string) func(any) ([]string, bool) {
	return func(v any) ([]string, bool) {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		arr, ok := obj[key].([]any)
		if !ok {
			return nil, false
		}
		return stringItems(arr), true
	}
}

// decodeDataObjects handles the OpenAI-style {"data": [{"id": ...}]} shape,
// falling back to each element's "model" field when "id" is absent.
func decodeDataObjects(v any) ([]string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	arr, ok := obj["data"].([]any)
	if !ok {
		return nil, false
	}
	var ids []string
	for _, item := range arr {
		var elem struct {
			ID    string `mapstructure:"id"`
			Model string `mapstructure:"model"`
		}
		if err := mapstructure.Decode(item, &elem); err != nil {
			continue
		}
		switch {
		case elem.ID != "":
			ids = append(ids, elem.ID)
		case elem.Model != "":
			ids = append(ids, elem.Model)
		}
	}
	return ids, true
}

// decodeCommaString handles a JSON string body holding a comma-separated
// list.
func decodeCommaString(v any) ([]string, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	var ids []string
	for _, piece := range strings.Split(s, ",") {
		if t := strings.TrimSpace(piece); t != "" {
			ids = append(ids, t)
		}
	}
	return ids, true
}

func stringItems(arr []any) []string {
	var ids []string
	for _, item := range arr {
		if s, ok := item.(string); ok && s != "" {
			ids = append(ids, s)
		}
	}
	return ids
}
