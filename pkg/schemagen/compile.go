package schemagen

import (
	"encoding/json"
	"errors"
	"strings"

	sjv "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	invopop "github.com/invopop/jsonschema"
)

// printer renders meta-schema violations as English text.
var printer = message.NewPrinter(language.English)

// Compile materializes a generated schema and compiles it, verifying the
// assembled document is structurally valid against its declared dialect.
// It returns a ConstructionError describing the violations otherwise.
//
// This checks the schema document itself; it does not validate instance data
// against the schema.
func Compile(schema *invopop.Schema) error {
	data, err := json.Marshal(schema)
	if err != nil {
		return &ConstructionError{Reason: "schema failed to materialize", Err: err}
	}

	doc, err := sjv.UnmarshalJSON(strings.NewReader(string(data)))
	if err != nil {
		return &ConstructionError{Reason: "schema is not a JSON document", Err: err}
	}

	compiler := sjv.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return &ConstructionError{Reason: "schema resource rejected", Err: err}
	}
	if _, err := compiler.Compile("schema.json"); err != nil {
		return &ConstructionError{
			Reason: "schema failed structural validation: " + strings.Join(compileErrors(err), "; "),
			Err:    err,
		}
	}
	return nil
}

// compileErrors extracts human-readable messages from a compile failure.
func compileErrors(err error) []string {
	var validationErr *sjv.ValidationError
	if errors.As(err, &validationErr) {
		var msgs []string
		collectLeafErrors(validationErr, &msgs)
		if len(msgs) > 0 {
			return msgs
		}
	}
	return []string{err.Error()}
}

// collectLeafErrors walks the cause tree and keeps leaf violations only.
func collectLeafErrors(err *sjv.ValidationError, msgs *[]string) {
	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if len(err.InstanceLocation) > 0 {
			msg = "/" + strings.Join(err.InstanceLocation, "/") + ": " + msg
		}
		*msgs = append(*msgs, msg)
	}
	for _, cause := range err.Causes {
		collectLeafErrors(cause, msgs)
	}
}
