package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tesso57/substats/internal/domain/subset"
	"gopkg.in/yaml.v3"
)

// loadDocument reads JSON or YAML. JSON is valid YAML flow syntax, so one
// node walk serves both and keeps the document's key order.
func (l *Loader) loadDocument(path string) (*subset.Items, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return decodeDocument(f)
}

func decodeDocument(r io.Reader) (*subset.Items, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return subset.NewItems(), nil
		}
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must map subset keys to rows", ErrMalformed)
	}

	items := subset.NewItems()
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		var value any
		if err := valueNode.Decode(&value); err != nil {
			return nil, fmt.Errorf("subset %q: %w", keyNode.Value, err)
		}
		if rows, ok := value.([]any); ok {
			items.Set(keyNode.Value, subset.AsRecords(rows))
			continue
		}
		items.Set(keyNode.Value, value)
	}
	return items, nil
}
