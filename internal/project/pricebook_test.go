package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gentrystinson/cabquote/internal/catalog"
)

func TestLoadPriceBookNoPathIsDefault(t *testing.T) {
	book, err := LoadPriceBook("")
	if err != nil {
		t.Fatalf("LoadPriceBook failed: %v", err)
	}
	if got := book.UnitCost(catalog.BoxConstruction, "Inset"); got != 600 {
		t.Errorf("expected default tables, Inset = %v", got)
	}
}

func TestLoadPriceBookMissingFileIsDefault(t *testing.T) {
	book, err := LoadPriceBook(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadPriceBook failed: %v", err)
	}
	if got := book.UnitCost(catalog.BoxConstruction, "Inset"); got != 600 {
		t.Errorf("expected default tables, Inset = %v", got)
	}
}

func TestLoadPriceBookMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")
	overlay := `{"options":{"boxConstruction":{"Inset":650}}}`
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	book, err := LoadPriceBook(path)
	if err != nil {
		t.Fatalf("LoadPriceBook failed: %v", err)
	}
	if got := book.UnitCost(catalog.BoxConstruction, "Inset"); got != 650 {
		t.Errorf("override not applied, Inset = %v", got)
	}
	// Untouched entries fall through to the defaults.
	if got := book.UnitCost(catalog.BoxConstruction, "Overlay"); got != 410 {
		t.Errorf("default lost, Overlay = %v", got)
	}
	if _, ok := book.Addon("floatingShelves"); !ok {
		t.Error("default addons should survive a partial overlay")
	}
}

func TestLoadPriceBookRejectsCorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")
	if err := os.WriteFile(path, []byte(`{bad`), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadPriceBook(path); err == nil {
		t.Error("expected error for corrupt price book")
	}
}

func TestSavePriceBookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")
	book := catalog.Default()
	book.Options[catalog.BoxConstruction]["Inset"] = 625

	if err := SavePriceBook(path, book); err != nil {
		t.Fatalf("SavePriceBook failed: %v", err)
	}
	loaded, err := LoadPriceBook(path)
	if err != nil {
		t.Fatalf("LoadPriceBook failed: %v", err)
	}
	if got := loaded.UnitCost(catalog.BoxConstruction, "Inset"); got != 625 {
		t.Errorf("expected 625 after round trip, got %v", got)
	}
}
