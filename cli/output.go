package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

const (
	outputFormatTable = "table"
	outputFormatYAML  = "yaml"
	outputFormatJSON  = "json"
)

func validateOutputFormat(outputFormat string) error {
	switch strings.ToLower(outputFormat) {
	case outputFormatTable, outputFormatYAML, outputFormatJSON:
		return nil
	}
	return errors.Errorf("unknown output format %q", outputFormat)
}

// formatStructured renders obj as YAML or JSON. The table format is handled
// by each command.
func formatStructured(outputFormat string, obj interface{}) (string, error) {
	switch strings.ToLower(outputFormat) {
	case outputFormatYAML:
		yamlBytes, err := yaml.Marshal(obj)
		if err != nil {
			return "", errors.Wrap(err, "error formatting output")
		}
		return string(yamlBytes), nil
	case outputFormatJSON:
		prettyJSON, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "error formatting output")
		}
		return string(prettyJSON), nil
	}
	return "", errors.Errorf("unknown output format %q", outputFormat)
}

func printStructured(outputFormat string, obj interface{}) error {
	out, err := formatStructured(outputFormat, obj)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
