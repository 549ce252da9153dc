package tsplibio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hexway-oss/tspkit/tsplibio"
)

func writeTempInstance(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.tsp")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	return path
}

func TestReadTSPLIBParsesEuc2D(t *testing.T) {
	path := writeTempInstance(t, `NAME: square
TYPE: TSP
DIMENSION: 4
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 10 0
3 10 10
4 0 10
EOF
`)

	nodes, n, err := tsplibio.ReadTSPLIB(path)
	if err != nil {
		t.Fatalf("ReadTSPLIB: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected dimension 4, got %d", n)
	}
	if len(nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(nodes))
	}
	if nodes[0].X != 0 || nodes[0].Y != 0 {
		t.Fatalf("expected node 0 at (0,0), got %v", nodes[0])
	}
	if nodes[2].X != 10 || nodes[2].Y != 10 {
		t.Fatalf("expected node 2 at (10,10), got %v", nodes[2])
	}
}

func TestReadTSPLIBRejectsMissingDimension(t *testing.T) {
	path := writeTempInstance(t, `NAME: broken
NODE_COORD_SECTION
1 0 0
EOF
`)

	_, _, err := tsplibio.ReadTSPLIB(path)
	if err != tsplibio.ErrMalformedHeader {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestReadTSPLIBRejectsMissingFile(t *testing.T) {
	_, _, err := tsplibio.ReadTSPLIB(filepath.Join(t.TempDir(), "does-not-exist.tsp"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
