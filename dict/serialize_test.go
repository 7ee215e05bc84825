package dict

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCBORRoundtrip(t *testing.T) {
	b := fixtureBundle()
	data, err := b.EncodeCBOR()
	require.NoError(t, err)

	b2, err := DecodeCBOR(data)
	require.NoError(t, err)
	require.Equal(t, b.STPhrases.Entries, b2.STPhrases.Entries)
	require.Equal(t, b.STPhrases.MaxLen, b2.STPhrases.MaxLen)
	require.Equal(t, b.STPhrases.MinLen, b2.STPhrases.MinLen)
	require.Equal(t, b.STPhrases.KeyLengthMask, b2.STPhrases.KeyLengthMask)
	require.Equal(t, b.STPhrases.StarterLenMask, b2.STPhrases.StarterLenMask)

	// dense arrays are rebuilt, not shipped
	require.True(t, b2.STPhrases.StarterAllows('龙', 4))
	require.True(t, b2.STCharacters.StarterAllows('马', 1))
}

func TestCBORRejectsGarbage(t *testing.T) {
	_, err := DecodeCBOR([]byte("not cbor at all"))
	require.Error(t, err)
	require.IsType(t, &CBORParseError{}, err)
}

func TestCompressedRoundtrip(t *testing.T) {
	b := fixtureBundle()
	path := filepath.Join(t.TempDir(), "dicts.zst")
	require.NoError(t, b.SaveCompressed(path))

	b2, err := LoadCompressed(path)
	require.NoError(t, err)
	require.Equal(t, b.STCharacters.Entries, b2.STCharacters.Entries)
	require.Equal(t, b.TSPhrases.Entries, b2.TSPhrases.Entries)
	require.True(t, b2.STPhrases.StarterAllows('龙', 4))
}

func TestLoadCompressedMissing(t *testing.T) {
	_, err := LoadCompressed(filepath.Join(t.TempDir(), "absent.zst"))
	require.Error(t, err)
	require.IsType(t, &IOError{}, err)
}

func TestJSONRoundtrip(t *testing.T) {
	b := fixtureBundle()
	path := filepath.Join(t.TempDir(), "dicts.json")
	require.NoError(t, b.SaveJSON(path))

	b2, err := LoadJSON(path)
	require.NoError(t, err)
	require.Equal(t, b.STPhrases.Entries, b2.STPhrases.Entries)
	require.Equal(t, b.STPhrases.KeyLengthMask, b2.STPhrases.KeyLengthMask)
	require.Equal(t, b.STPhrases.StarterLenMask, b2.STPhrases.StarterLenMask)
	require.True(t, b2.STCharacters.StarterAllows('龙', 1))
}
