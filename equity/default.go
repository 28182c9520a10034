package equity

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed data/headsup.json
var defaultTableData []byte

var loadDefault = sync.OnceValues(func() (*Table, error) {
	t, err := Load(bytes.NewReader(defaultTableData))
	if err != nil {
		return nil, fmt.Errorf("%w: embedded table: %w", ErrTableNotLoaded, err)
	}
	return t, nil
})

// Default returns the embedded heads-up table, decoded on first use. A
// decode failure is returned to every caller.
func Default() (*Table, error) {
	return loadDefault()
}
