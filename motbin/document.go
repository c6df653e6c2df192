// Package motbin holds the portable form of a moveset: the ordered JSON
// document and the bundle of animation files saved next to it.
package motbin

import (
	"errors"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/schema"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ExportVersion is written into every document and checked on load
const ExportVersion = "1.0.1"

var (
	// ErrVersionMismatch is returned for documents from an incompatible exporter
	ErrVersionMismatch = errors.New("export version mismatch")

	// ErrDocumentFormat is returned for documents that are not a moveset
	ErrDocumentFormat = errors.New("malformed document")
)

// hashExcluded are the keys left out of the content hash
var hashExcluded = map[string]bool{
	"original_hash":         true,
	"last_calculated_hash":  true,
	"export_version":        true,
	"character_name":        true,
	"extraction_date":       true,
	"tekken_character_name": true,
	"creator_name":          true,
	"date":                  true,
	"fulldate":              true,
	"mota_type":             true,
}

// Document is one exported moveset
type Document struct {
	OriginalHash       string
	LastCalculatedHash string
	ExportVersion      string
	// Version is the label of the game the moveset was read from ("Tekken7")
	Version        string
	CharacterID    int64
	ExtractionDate string
	// Header holds extra header integers such as _0x4
	Header *Record

	CharacterName       string
	TekkenCharacterName string
	CreatorName         string
	Date                string
	FullDate            string

	// Aliases holds the alias arrays under their document keys
	Aliases *Record
	Kinds   [schema.NumKinds][]*Record

	// MotaType selects which MOTA slots the document provides, -1 when absent
	MotaType int
}

// NewDocument returns an empty document stamped with the current export version
func NewDocument(version string) *Document {
	return &Document{
		ExportVersion: ExportVersion,
		Version:       version,
		Header:        NewRecord(1),
		Aliases:       NewRecord(3),
		MotaType:      -1,
	}
}

// Count returns the number of records of a kind
func (d *Document) Count(id schema.KindID) int {
	return len(d.Kinds[id])
}

// marshal writes every key in document order through sjson, which appends new keys at the end
func (d *Document) marshal(withMota bool) ([]byte, error) {
	doc := []byte("{}")
	var err error
	set := func(key string, v Value) {
		if err != nil {
			return
		}
		if v.Kind == Text {
			doc, err = sjson.SetBytes(doc, escapeKey(key), v.Text())
			return
		}
		doc, err = sjson.SetRawBytes(doc, escapeKey(key), v.AppendJSON(nil))
	}

	set("original_hash", String(d.OriginalHash))
	set("last_calculated_hash", String(d.LastCalculatedHash))
	set("export_version", String(d.ExportVersion))
	set("version", String(d.Version))
	set("character_id", Int(d.CharacterID))
	set("extraction_date", String(d.ExtractionDate))
	if d.Header != nil {
		for _, e := range d.Header.Entries() {
			set(e.Name, e.Value)
		}
	}
	set("character_name", String(d.CharacterName))
	set("tekken_character_name", String(d.TekkenCharacterName))
	set("creator_name", String(d.CreatorName))
	set("date", String(d.Date))
	set("fulldate", String(d.FullDate))
	if d.Aliases != nil {
		for _, e := range d.Aliases.Entries() {
			set(e.Name, e.Value)
		}
	}
	for _, id := range schema.DocumentOrder {
		if err != nil {
			break
		}
		doc, err = sjson.SetRawBytes(doc, id.String(), appendRecords(nil, d.Kinds[id]))
	}
	if withMota && d.MotaType >= 0 {
		set("mota_type", Int(int64(d.MotaType)))
	}
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return doc, nil
}

func appendRecords(dst []byte, records []*Record) []byte {
	dst = append(dst, '[')
	for i, r := range records {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = r.AppendJSON(dst)
	}
	return append(dst, ']')
}

// escapeKey protects the sjson path syntax characters a header key might contain
func escapeKey(key string) string {
	if !strings.ContainsAny(key, ".*?|#@\\") {
		return key
	}
	var b strings.Builder
	for _, c := range key {
		if strings.ContainsRune(".*?|#@\\", c) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Marshal returns the compact JSON of the document
func (d *Document) Marshal() ([]byte, error) {
	return d.marshal(true)
}

// MarshalIndent returns the document with four space indentation, key order kept
func (d *Document) MarshalIndent() ([]byte, error) {
	raw, err := d.marshal(true)
	if err != nil {
		return nil, err
	}
	return []byte(gjson.GetBytes(raw, `@pretty:{"indent":"    "}`).Raw), nil
}

// Hash computes the CRC-32 of the concatenated values of every hashed key, in key order
func (d *Document) Hash() (string, error) {
	raw, err := d.marshal(false)
	if err != nil {
		return "", err
	}
	return HashJSON(raw), nil
}

// HashJSON hashes an encoded document the same way Hash does
func HashJSON(raw []byte) string {
	h := crc32.NewIEEE()
	gjson.ParseBytes(raw).ForEach(func(key, value gjson.Result) bool {
		if !hashExcluded[key.String()] {
			h.Write([]byte(value.Raw))
		}
		return true
	})
	return fmt.Sprintf("%x", h.Sum32())
}

// Seal computes the hash and stores it as both the original and the last calculated hash
func (d *Document) Seal() error {
	sum, err := d.Hash()
	if err != nil {
		return err
	}
	d.OriginalHash = sum
	d.LastCalculatedHash = sum
	return nil
}

// VersionMatches compares the major.minor part of an export version with ExportVersion.
// exact is false when only the trailing component differs.
func VersionMatches(version string) (ok bool, exact bool) {
	upper := func(v string) string {
		if i := strings.LastIndex(v, "."); i >= 0 {
			return v[:i]
		}
		return ""
	}
	ok = version != "" && upper(version) == upper(ExportVersion)
	return ok, ok && version == ExportVersion
}

// CheckVersion reads export_version from raw document bytes without decoding the rest
func CheckVersion(raw []byte) (string, error) {
	r := gjson.GetBytes(raw, "export_version")
	if !r.Exists() {
		return "", fmt.Errorf("no export_version: %w", ErrVersionMismatch)
	}
	v := r.String()
	if ok, _ := VersionMatches(v); !ok {
		return v, fmt.Errorf("moveset version %s, importer version %s: %w", v, ExportVersion, ErrVersionMismatch)
	}
	return v, nil
}

// Parse decodes a document. The export version gate runs first.
func Parse(raw []byte) (*Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("invalid json: %w", ErrDocumentFormat)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, fmt.Errorf("top level is not an object: %w", ErrDocumentFormat)
	}
	if _, err := CheckVersion(raw); err != nil {
		return nil, err
	}

	version := root.Get("version")
	if version.Type != gjson.String {
		return nil, fmt.Errorf("no version label: %w", ErrDocumentFormat)
	}

	d := NewDocument(version.String())
	d.ExportVersion = root.Get("export_version").String()
	d.OriginalHash = root.Get("original_hash").String()
	d.LastCalculatedHash = root.Get("last_calculated_hash").String()
	d.CharacterID = root.Get("character_id").Int()
	d.ExtractionDate = root.Get("extraction_date").String()
	d.CharacterName = root.Get("character_name").String()
	d.TekkenCharacterName = root.Get("tekken_character_name").String()
	d.CreatorName = root.Get("creator_name").String()
	d.Date = root.Get("date").String()
	d.FullDate = root.Get("fulldate").String()
	if m := root.Get("mota_type"); m.Exists() {
		d.MotaType = int(m.Int())
	}

	kinds := make(map[string]schema.KindID, schema.NumKinds)
	for id := schema.KindID(0); id < schema.NumKinds; id++ {
		kinds[id.String()] = id
	}

	var err error
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if id, ok := kinds[name]; ok {
			if !value.IsArray() {
				err = fmt.Errorf("%s is not an array: %w", name, ErrDocumentFormat)
				return false
			}
			d.Kinds[id], err = parseRecords(name, value)
			return err == nil
		}
		switch {
		case strings.Contains(name, "aliases"):
			d.Aliases.Set(name, valueFromJSON(value))
		case strings.HasPrefix(name, "_0x"):
			d.Header.Set(name, valueFromJSON(value))
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func parseRecords(kind string, arr gjson.Result) ([]*Record, error) {
	var out []*Record
	var err error
	arr.ForEach(func(_, e gjson.Result) bool {
		switch {
		case e.IsObject():
			r := NewRecord(8)
			e.ForEach(func(k, v gjson.Result) bool {
				r.Set(k.String(), valueFromJSON(v))
				return true
			})
			out = append(out, r)
		case e.Type == gjson.Number:
			out = append(out, NewScalar("value", valueFromJSON(e)))
		default:
			err = fmt.Errorf("%s[%d]: unexpected %s: %w", kind, len(out), e.Type, ErrDocumentFormat)
			return false
		}
		return true
	})
	return out, err
}
