// Package documents locates and parses the markdown content documents
// an archive build ingests. Each document carries a YAML front-matter
// header with structured metadata and a free-text body.
package documents

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document identifies one content document on disk.
type Document struct {
	// Path is the absolute location of the file.
	Path string
	// ID is the stable identifier derived from the path relative to
	// the category root, without extension and with leading
	// underscores stripped.
	ID string
	// ContentPath is the path relative to the content root, for log
	// output.
	ContentPath string
	// Filename is the file's base name including extension.
	Filename string
	// Basename is the file's base name without extension.
	Basename string
}

// Parsed holds the split form of a loaded document.
type Parsed struct {
	// Meta is the raw front-matter mapping, ready for typed decoding.
	Meta map[string]any
	// Body is the markdown text following the front matter.
	Body string
}

// Find walks contentDir/category for markdown documents, ordered by
// path. Files whose name starts with an underscore are skipped.
func Find(contentDir, category string) ([]Document, error) {
	root := filepath.Join(contentDir, category)
	var docs []Document
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		if strings.HasPrefix(d.Name(), "_") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		id := strings.TrimSuffix(rel, ".md")
		id = strings.TrimLeft(id, "_")
		contentRel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		docs = append(docs, Document{
			Path:        path,
			ID:          id,
			ContentPath: filepath.ToSlash(contentRel),
			Filename:    d.Name(),
			Basename:    strings.TrimSuffix(d.Name(), ".md"),
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// A missing category directory means no documents, not a
			// broken build.
			return nil, nil
		}
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Load reads a document from disk and splits it into front matter and
// body.
func Load(path string) (*Parsed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(string(raw))
}

// Parse splits raw document text into its YAML front matter and
// markdown body. Documents without a front-matter header yield an
// empty metadata mapping.
func Parse(raw string) (*Parsed, error) {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") && text != "---" {
		return &Parsed{Meta: map[string]any{}, Body: strings.TrimSpace(text)}, nil
	}

	rest := strings.TrimPrefix(text, "---\n")
	head, body, found := strings.Cut(rest, "\n---")
	if !found {
		return nil, fmt.Errorf("unterminated front matter")
	}
	body = strings.TrimPrefix(body, "\n")

	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(head), &meta); err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	return &Parsed{Meta: meta, Body: strings.TrimSpace(body)}, nil
}

// LoadYAML decodes a standalone YAML data file into out.
func LoadYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read yaml: %w", err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse yaml %s: %w", filepath.Base(path), err)
	}
	return nil
}
