package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/aledsdavies/add2vals/core/calc"
	"github.com/aledsdavies/add2vals/pkgs/errors"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var supportedFormats = []string{formatText, formatJSON, formatYAML}

// resultDocument is the structured form of a result. Value holds the
// canonical rendering so arbitrary-precision integers survive encoding.
type resultDocument struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

func validateFormat(format string) error {
	if !slices.Contains(supportedFormats, format) {
		return errors.NewInvalidFormatError(format, supportedFormats)
	}
	return nil
}

func writeResult(w io.Writer, format string, v calc.Value) error {
	doc := resultDocument{Kind: v.Kind().String(), Value: v.String()}

	var err error
	switch format {
	case formatText:
		_, err = fmt.Fprintln(w, doc.Value)
	case formatJSON:
		err = json.NewEncoder(w).Encode(doc)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	default:
		return errors.NewInvalidFormatError(format, supportedFormats)
	}

	if err != nil {
		return errors.NewOutputError(err)
	}
	return nil
}
