package tidy

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dendrascience/dirtidy/util"
)

// OtherCategory receives files whose extension matches no category.
const OtherCategory = "other"

// Category maps a destination folder to the extensions it collects.
type Category struct {
	Name       string
	Extensions []string
}

// Categories is checked in order; the first category listing an extension
// wins.
type Categories []Category

// DefaultCategories is the built-in extension table.
func DefaultCategories() Categories {
	return Categories{
		{"images", []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".tiff"}},
		{"documents", []string{".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls", ".xlsx", ".csv", ".pptx"}},
		{"audio", []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a"}},
		{"video", []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}},
		{"archives", []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"}},
		{"code", []string{".py", ".js", ".html", ".css", ".java", ".cpp", ".h", ".json", ".xml", ".yaml", ".yml"}},
	}
}

// Lookup returns the folder for ext, or OtherCategory.
func (c Categories) Lookup(ext string) string {
	ext = util.NormalizeExt(ext)
	for _, category := range c {
		for _, candidate := range category.Extensions {
			if util.NormalizeExt(candidate) == ext {
				return category.Name
			}
		}
	}
	return OtherCategory
}

// LoadCategories reads a YAML mapping of folder name to extension list.
// Document order is kept so earlier folders take precedence:
//
//	images: [.jpg, .png]
//	notes:  [md, txt]
func LoadCategories(r io.Reader) (Categories, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: categories must be a mapping of folder to extensions", ErrInvalidOption)
	}

	mapping := doc.Content[0]
	categories := make(Categories, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		var category Category
		if err := mapping.Content[i].Decode(&category.Name); err != nil {
			return nil, fmt.Errorf("decoding category name: %w", err)
		}
		if err := mapping.Content[i+1].Decode(&category.Extensions); err != nil {
			return nil, fmt.Errorf("decoding extensions for %q: %w", category.Name, err)
		}
		if err := validCategoryName(category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// validCategoryName rejects names that are not a single folder directly
// inside the sorted directory.
func validCategoryName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty category name", ErrInvalidOption)
	case name == "." || name == "..", strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: category %q must be a plain folder name", ErrInvalidOption, name)
	}
	return nil
}
