package ephemeris

import (
	"context"
	"fmt"
	"os"
	"time"
)

// TableModel is a Model backed by an element table.
type TableModel struct {
	name  string
	table ElementTable
}

// NewBuiltin returns the model backed by the built-in JPL element table.
func NewBuiltin() *TableModel {
	return &TableModel{name: ModelBuiltin, table: BuiltinElements()}
}

// NewTableModel returns a model that propagates tbl under the given name.
func NewTableModel(name string, tbl ElementTable) *TableModel {
	return &TableModel{name: name, table: tbl}
}

// LoadElementsFile reads a TOML element table from path and returns the
// elements model backed by it.
func LoadElementsFile(path string) (*TableModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading elements file: %w", err)
	}
	tbl, err := ParseElements(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewTableModel(ModelElements, tbl), nil
}

// Name returns the model name.
func (m *TableModel) Name() string { return m.name }

// Table returns the element table the model propagates.
func (m *TableModel) Table() ElementTable { return m.table }

// Locate propagates the body's elements to t and returns its heliocentric
// equatorial position.
func (m *TableModel) Locate(ctx context.Context, body Body, t time.Time) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}
	if !body.Valid() {
		return Reading{}, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}
	if !m.table.covers(t) {
		return Reading{}, fmt.Errorf("%w: %s not in %d-%d",
			ErrOutOfRange, t.UTC().Format(time.RFC3339), m.table.ValidFrom, m.table.ValidTo)
	}
	el, ok := m.table.lookup(body)
	if !ok {
		return Reading{}, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}

	ecl := heliocentricEcliptic(el, centuriesSinceJ2000(t))
	return readingFrom(eclipticToEquatorial(ecl)), nil
}
