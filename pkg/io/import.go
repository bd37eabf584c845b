package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alphapapa/graph.el/pkg/errors"
	"github.com/alphapapa/graph.el/pkg/tree"
)

// Formats accepted by ImportFile, keyed by file extension.
var decoders = map[string]func(io.Reader) ([]tree.Node, error){
	".json": ReadJSON,
	".yaml": ReadYAML,
	".yml":  ReadYAML,
}

// symbolKey marks a symbolic label object.
const symbolKey = "symbol"

// ReadJSON decodes a forest from JSON. ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]tree.Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return decodeForest(data)
}

// ReadYAML decodes a forest from YAML. ReadYAML does not close r.
func ReadYAML(r io.Reader) ([]tree.Node, error) {
	var data any
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
	}
	return decodeForest(data)
}

// ImportFile reads the forest stored at path. The decoder is chosen by the
// file extension.
func ImportFile(path string) ([]tree.Node, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported tree file %s (want .json, .yaml or .yml)", filepath.Base(path))
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	forest, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return forest, nil
}

func decodeForest(data any) ([]tree.Node, error) {
	items, ok := data.([]any)
	if !ok || len(items) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTree, "expected a non-empty list of trees")
	}

	// A bare tree starts with its label rather than a subtree.
	if _, isList := items[0].([]any); !isList {
		items = []any{items}
	}

	forest := make([]tree.Node, len(items))
	for i, item := range items {
		t, err := decodeTree(item, fmt.Sprint(i))
		if err != nil {
			return nil, err
		}
		forest[i] = t
	}
	if err := tree.Validate(forest); err != nil {
		return nil, err
	}
	return forest, nil
}

func decodeTree(v any, path string) (tree.Node, error) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return tree.Node{}, errors.New(errors.ErrCodeInvalidTree, "node %s: expected [label, children...]", path)
	}

	n, err := decodeLabel(items[0], path)
	if err != nil {
		return tree.Node{}, err
	}
	for i, child := range items[1:] {
		c, err := decodeTree(child, fmt.Sprintf("%s.%d", path, i))
		if err != nil {
			return tree.Node{}, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}

func decodeLabel(v any, path string) (tree.Node, error) {
	switch l := v.(type) {
	case string:
		return tree.New(l), nil
	case json.Number, int, int64, float64, bool:
		return tree.New(fmt.Sprint(l)), nil
	case map[string]any:
		tok, ok := l[symbolKey].(string)
		if !ok || len(l) != 1 {
			return tree.Node{}, errors.New(errors.ErrCodeInvalidTree,
				"node %s: label object must have exactly one string %q key", path, symbolKey)
		}
		return tree.Sym(tok), nil
	case nil:
		return tree.Node{}, errors.New(errors.ErrCodeInvalidTree, "node %s: missing label", path)
	default:
		return tree.Node{}, errors.New(errors.ErrCodeInvalidTree, "node %s: unsupported label type %T", path, v)
	}
}
