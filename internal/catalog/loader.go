package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Load reads somewhat-trusted catalog JSON from path, validates it against the
// catalog schema, and applies the semantic checks the schema can't express.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse validates and decodes catalog JSON.
func Parse(raw []byte) (*Catalog, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("catalog is not valid JSON: %w", err)
	}

	compiled, err := compiledCatalogSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	for i := range cat.Domains {
		d := &cat.Domains[i]
		for j := range d.Questions {
			q := &d.Questions[j]
			q.Kind = ParseKind(string(q.Kind))
		}
		if err := checkDomain(d); err != nil {
			return nil, fmt.Errorf("domain %q: %w", d.ID, err)
		}
	}

	return &cat, nil
}

// checkDomain enforces the constraints that hold per question kind.
func checkDomain(d *Domain) error {
	seen := make(map[string]bool, len(d.Questions))
	for _, q := range d.Questions {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		switch q.Kind {
		case KindRadio, KindCheckbox:
			if len(q.AllowedAnswers) == 0 {
				return fmt.Errorf("question %q: %s question needs answer options", q.ID, q.Kind)
			}
		case KindNumber:
			if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
				return fmt.Errorf("question %q: min %v exceeds max %v", q.ID, *q.Min, *q.Max)
			}
		}
	}
	return nil
}

func compiledCatalogSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog schema: %w", err)
	}
	defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://readiness-catalog.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add catalog schema resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	return compiled, nil
}
