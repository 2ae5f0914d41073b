package project

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/gentrystinson/cabquote/internal/catalog"
)

// LoadPriceBook returns the default price book with any overrides from the
// given JSON file merged in. A missing or empty path returns the default
// book unchanged.
func LoadPriceBook(path string) (*catalog.PriceBook, error) {
	book := catalog.Default()
	if path == "" {
		return book, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return book, nil
		}
		return nil, err
	}
	var overlay catalog.PriceBook
	if err := json.Unmarshal(data, &overlay); err != nil {
		return nil, err
	}
	book.Merge(&overlay)
	return book, nil
}

// SavePriceBook writes a price book (or a partial overlay) as JSON.
func SavePriceBook(path string, book *catalog.PriceBook) error {
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
