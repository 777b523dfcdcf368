package catalog

// catalogSchema is the JSON Schema a catalog file must satisfy before it
// is accepted. Validation happens at load time so malformed catalogs fail
// loudly instead of producing half-usable domains.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"domains": map[string]any{
			"type":  "array",
			"items": domainSchema,
		},
	},
	"required":             []any{"domains"},
	"additionalProperties": false,
}

var domainSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "minLength": 1},
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string"},
		"icon":        map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":  "array",
			"items": questionSchema,
		},
	},
	"required":             []any{"id", "title", "questions"},
	"additionalProperties": false,
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "string", "minLength": 1},
		"text":     map[string]any{"type": "string", "minLength": 1},
		"type":     map[string]any{"enum": []any{"text", "radio", "checkbox", "number"}},
		"required": map[string]any{"type": "boolean"},
		"answers": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"min": map[string]any{"type": "number"},
		"max": map[string]any{"type": "number"},
	},
	"required":             []any{"id", "text"},
	"additionalProperties": false,
}
