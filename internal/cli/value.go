package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// cborDecMode decodes untyped CBOR maps as map[string]any so nested
// documents look the same as decoded JSON and YAML.
var cborDecMode cbor.DecMode

func init() {
	var err error
	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("cli: CBOR decoder initialization failed: " + err.Error())
	}
}

// Document formats, chosen by file extension.
const (
	formatJSON = "json"
	formatCBOR = "cbor"
	formatYAML = "yaml"
)

// formatOf maps a file name to its document format. .json and .jsonc are
// JSON with comments and trailing commas allowed; .cbor is CBOR; anything
// else is YAML.
func formatOf(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json", ".jsonc":
		return formatJSON
	case ".cbor":
		return formatCBOR
	}
	return formatYAML
}

// readValue loads the document to check.
func readValue(file string) (any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, userError(fmt.Errorf("value file %s not found", file))
		}
		return nil, sysError(fmt.Errorf("read %s: %w", file, err))
	}
	v, err := decodeValue(file, data)
	if err != nil {
		return nil, userError(fmt.Errorf("%s: %w", file, err))
	}
	return v, nil
}

// decodeValue decodes data in the format implied by file. JSON numbers stay
// json.Number; objects become map[string]any in every format.
func decodeValue(file string, data []byte) (any, error) {
	var v any
	switch formatOf(file) {
	case formatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
			return nil, errors.New("decode JSON: trailing data after document")
		}
	case formatCBOR:
		if err := cborDecMode.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode CBOR: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	}
	return v, nil
}
