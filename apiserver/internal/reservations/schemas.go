package reservations

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed schemas/envelope.json
	envelopeSchema []byte
	//go:embed schemas/reservations.json
	reservationsSchema []byte

	envelopeSchemaLoader     = gojsonschema.NewBytesLoader(envelopeSchema)
	reservationsSchemaLoader = gojsonschema.NewBytesLoader(reservationsSchema)
)

// validate returns a nil slice if doc satisfies the schema. Otherwise it
// returns a description of each violation. A non-nil error means doc could
// not be evaluated at all, usually because it is not JSON.
func validate(
	schemaLoader gojsonschema.JSONLoader,
	doc []byte,
) ([]string, error) {
	result, err := gojsonschema.Validate(
		schemaLoader,
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	violations := make([]string, len(result.Errors()))
	for i, verr := range result.Errors() {
		violations[i] = verr.String()
	}
	return violations, nil
}
