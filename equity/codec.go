package equity

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tinylib/msgp/msgp"
)

// FormatVersion is the envelope version written by Encode.
const FormatVersion = 1

// Format selects the on-disk encoding of a table.
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	if f == FormatMsgpack {
		return "msgpack"
	}
	return "json"
}

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgp", ".msgpack", ".mp":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

type envelope struct {
	Version int                   `json:"version"`
	ID      string                `json:"id,omitempty"`
	Samples int                   `json:"samples,omitempty"`
	Entries map[string][2]float64 `json:"entries"`
}

//go:embed schema/table.json
var tableSchema string

const tableSchemaURL = "https://pokertrainer.dev/schemas/table.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(tableSchemaURL, strings.NewReader(tableSchema)); err != nil {
		return nil, fmt.Errorf("failed to add table schema: %w", err)
	}
	return compiler.Compile(tableSchemaURL)
})

// Load decodes a table from r. JSON and msgpack are told apart by the
// leading byte.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedTable)
	}
	if trimmed[0] == '{' {
		return decodeJSON(trimmed)
	}
	return decodeMsgpack(trimmed)
}

// LoadFile loads a table from disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func decodeJSON(data []byte) (*Table, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}
	return NewTable(Metadata{ID: env.ID, Samples: env.Samples}, env.Entries)
}

func decodeMsgpack(data []byte) (*Table, error) {
	env, err := readEnvelope(msgp.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}
	if env.Version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedTable, env.Version)
	}
	return NewTable(Metadata{ID: env.ID, Samples: env.Samples}, env.Entries)
}

func readEnvelope(r *msgp.Reader) (envelope, error) {
	var env envelope
	fields, err := r.ReadMapHeader()
	if err != nil {
		return env, err
	}
	for range fields {
		name, err := r.ReadString()
		if err != nil {
			return env, err
		}
		switch name {
		case "version":
			env.Version, err = r.ReadInt()
		case "id":
			env.ID, err = r.ReadString()
		case "samples":
			env.Samples, err = r.ReadInt()
		case "entries":
			env.Entries, err = readEntries(r)
		default:
			err = r.Skip()
		}
		if err != nil {
			return env, fmt.Errorf("field %q: %w", name, err)
		}
	}
	return env, nil
}

func readEntries(r *msgp.Reader) (map[string][2]float64, error) {
	n, err := r.ReadMapHeader()
	if err != nil {
		return nil, err
	}
	entries := make(map[string][2]float64, n)
	for range n {
		key, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		size, err := r.ReadArrayHeader()
		if err != nil {
			return nil, err
		}
		if size != 2 {
			return nil, fmt.Errorf("entry %q has %d values, want 2", key, size)
		}
		var pct [2]float64
		for i := range pct {
			if pct[i], err = r.ReadFloat64(); err != nil {
				return nil, fmt.Errorf("entry %q: %w", key, err)
			}
		}
		entries[key] = pct
	}
	return entries, nil
}

// Encode writes the table in the given format.
func (t *Table) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatMsgpack:
		return t.encodeMsgpack(w)
	case FormatJSON:
		return t.encodeJSON(w)
	default:
		return fmt.Errorf("unknown table format %d", format)
	}
}

func (t *Table) envelope() envelope {
	env := envelope{
		Version: FormatVersion,
		ID:      t.meta.ID,
		Samples: t.meta.Samples,
		Entries: make(map[string][2]float64, len(t.entries)),
	}
	for _, e := range t.entries {
		env.Entries[e.Key()] = [2]float64{e.EquityA, e.EquityB}
	}
	return env
}

func (t *Table) encodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(t.envelope())
}

func (t *Table) encodeMsgpack(w io.Writer) error {
	mw := msgp.NewWriter(w)
	if err := writeEnvelope(mw, t); err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}
	return mw.Flush()
}

func writeEnvelope(mw *msgp.Writer, t *Table) error {
	if err := mw.WriteMapHeader(4); err != nil {
		return err
	}
	if err := writeField(mw, "version", func() error { return mw.WriteInt(FormatVersion) }); err != nil {
		return err
	}
	if err := writeField(mw, "id", func() error { return mw.WriteString(t.meta.ID) }); err != nil {
		return err
	}
	if err := writeField(mw, "samples", func() error { return mw.WriteInt(t.meta.Samples) }); err != nil {
		return err
	}
	if err := mw.WriteString("entries"); err != nil {
		return err
	}
	if err := mw.WriteMapHeader(uint32(len(t.entries))); err != nil {
		return err
	}
	for _, e := range t.entries {
		if err := mw.WriteString(e.Key()); err != nil {
			return err
		}
		if err := mw.WriteArrayHeader(2); err != nil {
			return err
		}
		if err := mw.WriteFloat64(e.EquityA); err != nil {
			return err
		}
		if err := mw.WriteFloat64(e.EquityB); err != nil {
			return err
		}
	}
	return nil
}

func writeField(mw *msgp.Writer, name string, value func() error) error {
	if err := mw.WriteString(name); err != nil {
		return err
	}
	return value()
}
