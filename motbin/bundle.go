package motbin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/schema"
)

const animDir = "anim"

// Bundle is a document plus the raw animation and MOTA files stored beside it
type Bundle struct {
	Name     string
	Document *Document
	// Raw is the document as read from disk, nil for fresh exports
	Raw   []byte
	Anims map[string][]byte
	Mota  [schema.MotaSlots][]byte
}

// SaveStats reports what Save wrote
type SaveStats struct {
	Dir          string
	AnimsWritten int
	AnimsKept    int
	MotaWritten  int
}

// NewBundle returns an empty bundle for a document
func NewBundle(name string, doc *Document) *Bundle {
	return &Bundle{Name: name, Document: doc, Anims: map[string][]byte{}}
}

// AnimNames returns the animation names in sorted order
func (b *Bundle) AnimNames() []string {
	names := make([]string, 0, len(b.Anims))
	for n := range b.Anims {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// fileName keeps a name inside its directory
func fileName(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "\x00", "").Replace(name)
}

// Save writes dest/<name>/<name>.json, anim/<anim>.bin and mota_<i>.bin.
// Existing animation files are kept, the document and MOTA files are rewritten.
func (b *Bundle) Save(dest string) (SaveStats, error) {
	stats := SaveStats{Dir: filepath.Join(dest, fileName(b.Name))}
	if err := os.MkdirAll(filepath.Join(stats.Dir, animDir), 0755); err != nil {
		return stats, fmt.Errorf("create bundle directory: %w", err)
	}

	raw, err := b.Document.Marshal()
	if err != nil {
		return stats, err
	}
	jsonPath := filepath.Join(stats.Dir, fileName(b.Name)+".json")
	if err := os.WriteFile(jsonPath, raw, 0644); err != nil {
		return stats, fmt.Errorf("write document: %w", err)
	}

	for _, name := range b.AnimNames() {
		p := filepath.Join(stats.Dir, animDir, fileName(name)+".bin")
		if _, err := os.Stat(p); err == nil {
			stats.AnimsKept++
			continue
		}
		if err := os.WriteFile(p, b.Anims[name], 0644); err != nil {
			return stats, fmt.Errorf("write animation %s: %w", name, err)
		}
		stats.AnimsWritten++
	}

	for i, data := range b.Mota {
		if data == nil {
			continue
		}
		p := filepath.Join(stats.Dir, fmt.Sprintf("mota_%d.bin", i))
		if err := os.WriteFile(p, data, 0644); err != nil {
			return stats, fmt.Errorf("write mota %d: %w", i, err)
		}
		stats.MotaWritten++
	}
	return stats, nil
}

// LoadOption tunes LoadBundle
type LoadOption func(*loadConfig)

type loadConfig struct {
	searchRoot string
}

// WithAnimSearch looks for animations missing from the bundle in the sibling
// moveset folders under root, folders of the same game first
func WithAnimSearch(root string) LoadOption {
	return func(c *loadConfig) {
		c.searchRoot = root
	}
}

// LoadBundle reads a bundle directory. The document must be <dir>/<base>.json or the only json file.
// Animations referenced by moves but absent everywhere are left out of Anims.
func LoadBundle(dir string, options ...LoadOption) (*Bundle, error) {
	var cfg loadConfig
	for _, opt := range options {
		opt(&cfg)
	}

	jsonPath, err := findDocument(dir)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", jsonPath, err)
	}

	b := NewBundle(strings.TrimSuffix(filepath.Base(jsonPath), ".json"), doc)
	b.Raw = raw

	folders := []string{dir}
	if cfg.searchRoot != "" {
		folders = append(folders, searchFolders(cfg.searchRoot, dir, doc.Version)...)
	}
	for _, name := range referencedAnims(doc) {
		for _, folder := range folders {
			data, err := os.ReadFile(filepath.Join(folder, animDir, fileName(name)+".bin"))
			if err == nil {
				b.Anims[name] = data
				break
			}
		}
	}

	for i := range b.Mota {
		data, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("mota_%d.bin", i)))
		if err == nil {
			b.Mota[i] = data
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read mota %d: %w", i, err)
		}
	}
	return b, nil
}

func findDocument(dir string) (string, error) {
	p := filepath.Join(dir, filepath.Base(dir)+".json")
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return "", err
	}
	if len(matches) != 1 {
		return "", fmt.Errorf("%s: expected one document, found %d: %w", dir, len(matches), ErrDocumentFormat)
	}
	return matches[0], nil
}

// searchFolders lists the moveset folders under root, those named after the same game first
func searchFolders(root, self, label string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	prefix := ""
	if p, err := schema.LookupLabel(label); err == nil {
		prefix = string(p.Version()) + "_"
	}
	selfAbs, _ := filepath.Abs(self)

	var same, other []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p := filepath.Join(root, e.Name())
		if abs, _ := filepath.Abs(p); abs == selfAbs {
			continue
		}
		if prefix != "" && strings.HasPrefix(e.Name(), prefix) {
			same = append(same, p)
		} else {
			other = append(other, p)
		}
	}
	return append(same, other...)
}

func referencedAnims(doc *Document) []string {
	seen := map[string]bool{}
	var names []string
	for _, m := range doc.Kinds[schema.Moves] {
		n := m.Text("anim_name")
		if n != "" && !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}
