package progression

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/Reforge_Go/internal/domain"
)

type codec interface {
	Marshal(t *Table) ([]byte, error)
	Unmarshal(data []byte, t *Table) error
}

type jsonCodec struct{}

func (jsonCodec) Marshal(t *Table) ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Unmarshal(data []byte, t *Table) error {
	return json.Unmarshal(data, t)
}

type yamlCodec struct{}

func (yamlCodec) Marshal(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (yamlCodec) Unmarshal(data []byte, t *Table) error {
	return yaml.Unmarshal(data, t)
}

// codecFor picks the document format from the file extension
func codecFor(path string) (codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtJSON:
		return jsonCodec{}, nil
	case ExtYAML, ExtYML:
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	}
}

// Decode parses a document in the format implied by path.
// Sections missing from the document keep their default values.
func Decode(path string, data []byte) (*Table, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}

	t := DefaultTable()
	// Levels and recipes are replaced wholesale rather than merged key by key.
	t.Levels = nil
	t.ReverseRecipes = nil
	if err := c.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	if t.Levels == nil {
		t.Levels = DefaultTable().Levels
	}
	t.normalize()
	return t, nil
}

// Encode renders the table in the format implied by path
func Encode(path string, t *Table) ([]byte, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}
	data, err := c.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeConfigFailed, err)
	}
	return data, nil
}
