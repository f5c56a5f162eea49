// Package qr generates the per-table handle artifact: a scannable PNG
// that points guests at their table's ordering page. The artifact lives
// exactly as long as the occupancy; checkout destroys it.
package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator creates and destroys handle artifacts. Destroy is
// best-effort; callers log failures instead of propagating them.
type Generator interface {
	Create(payloadURL, tableID string) (string, error)
	Destroy(ref string) error
}

type fileGenerator struct {
	dir string
}

// NewFileGenerator writes QR PNGs under dir, one per table id.
func NewFileGenerator(dir string) (Generator, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create qr code dir %s: %w", dir, err)
	}
	return &fileGenerator{dir: dir}, nil
}

func (g *fileGenerator) Create(payloadURL, tableID string) (string, error) {
	path := filepath.Join(g.dir, tableID+".png")

	if err := qrcode.WriteFile(payloadURL, qrcode.Medium, 256, path); err != nil {
		return "", fmt.Errorf("encode qr code for %s: %w", tableID, err)
	}

	return path, nil
}

func (g *fileGenerator) Destroy(ref string) error {
	if ref == "" {
		return nil
	}

	if err := os.Remove(ref); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove qr code %s: %w", ref, err)
	}

	return nil
}
