package dict

import (
	"encoding/json"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// EncodeCBOR serializes the bundle to a CBOR document. Only the sparse
// form of every table goes over the wire; the dense BMP arrays are
// rebuilt on load.
func (b *Bundle) EncodeCBOR() ([]byte, error) {
	data, err := cbor.Marshal(b)
	if err != nil {
		return nil, &CBORParseError{Err: err}
	}
	return data, nil
}

// DecodeCBOR parses a CBOR bundle document and rebuilds all runtime
// indexes, so the returned bundle is immediately queryable.
func DecodeCBOR(data []byte) (*Bundle, error) {
	b := &Bundle{}
	if err := cbor.Unmarshal(data, b); err != nil {
		return nil, &CBORParseError{Err: err}
	}
	b.populateAll()
	return b, nil
}

// LoadBlob decodes a Zstd-compressed CBOR bundle from memory. This is the
// entry point for blobs embedded into a binary with go:embed.
func LoadBlob(blob []byte) (*Bundle, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, &CBORParseError{Err: err}
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, &CBORParseError{Err: err}
	}
	return DecodeCBOR(raw)
}

// LoadCompressed reads a Zstd-compressed CBOR bundle from disk.
func LoadCompressed(path string) (*Bundle, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return LoadBlob(blob)
}

// SaveCompressed writes the bundle to disk as Zstd-framed CBOR.
func (b *Bundle) SaveCompressed(path string) error {
	raw, err := b.EncodeCBOR()
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	blob := enc.EncodeAll(raw, nil)
	if err := enc.Close(); err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	tracer().Infof("wrote %s: %d bytes cbor, %d bytes compressed", path, len(raw), len(blob))
	return nil
}

// tableDTO is the JSON shape of one table. Starter masks are keyed by the
// starter character rendered as a string, because JSON object keys cannot
// be integers.
type tableDTO struct {
	Map            map[string]string `json:"map"`
	MaxLen         int               `json:"max_len"`
	MinLen         int               `json:"min_len"`
	KeyLengthMask  uint64            `json:"key_length_mask"`
	StarterLenMask map[string]uint64 `json:"starter_len_mask"`
}

func (d *DictMaxLen) toDTO() tableDTO {
	masks := make(map[string]uint64, len(d.StarterLenMask))
	for c, m := range d.StarterLenMask {
		masks[string(c)] = m
	}
	return tableDTO{
		Map:            d.Entries,
		MaxLen:         d.MaxLen,
		MinLen:         d.MinLen,
		KeyLengthMask:  d.KeyLengthMask,
		StarterLenMask: masks,
	}
}

func (t tableDTO) toTable() *DictMaxLen {
	d := &DictMaxLen{
		Entries:        t.Map,
		MaxLen:         t.MaxLen,
		MinLen:         t.MinLen,
		KeyLengthMask:  t.KeyLengthMask,
		StarterLenMask: make(map[rune]uint64, len(t.StarterLenMask)),
	}
	if d.Entries == nil {
		d.Entries = map[string]string{}
	}
	for s, m := range t.StarterLenMask {
		for _, c := range s {
			d.StarterLenMask[c] = m
			break
		}
	}
	d.populate()
	return d
}

// SaveJSON writes the bundle as one JSON document, tables keyed by their
// canonical lexicon names.
func (b *Bundle) SaveJSON(path string) error {
	doc := make(map[string]tableDTO, len(tableNames))
	for _, name := range tableNames {
		if d := b.Table(name); d != nil {
			doc[name] = d.toDTO()
		}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// LoadJSON reads a bundle previously written by SaveJSON.
func LoadJSON(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	doc := make(map[string]tableDTO)
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	b := &Bundle{}
	for name, t := range doc {
		slot := b.tableSlot(name)
		if slot == nil {
			continue
		}
		*slot = t.toTable()
	}
	b.populateAll()
	return b, nil
}
