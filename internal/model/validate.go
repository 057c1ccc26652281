package model

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/*.json seed/*.json
var files embed.FS

func schemaLoader(name string) (gojsonschema.JSONLoader, error) {
	b, err := files.ReadFile("schema/" + name)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", name, err)
	}
	return gojsonschema.NewBytesLoader(b), nil
}

// ValidateWithSchema validates a raw JSON document against one of the
// embedded schemas (for example "snapshot.schema.json").
func ValidateWithSchema(name string, raw []byte) error {
	sl, err := schemaLoader(name)
	if err != nil {
		return err
	}
	res, err := gojsonschema.Validate(sl, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// ValidateCommand checks an incoming command body before it is decoded.
func ValidateCommand(raw []byte) error {
	return ValidateWithSchema("command.schema.json", raw)
}
