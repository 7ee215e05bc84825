package opencc

import "strings"

// Config identifies a conversion configuration. The numeric values are
// stable across releases and mirror the C ABI ids.
type Config int

// Supported conversion configurations.
const (
	S2T   Config = 1  // Simplified -> Traditional
	S2Tw  Config = 2  // Simplified -> Traditional (Taiwan)
	S2Twp Config = 3  // Simplified -> Traditional (Taiwan, with phrases)
	S2Hk  Config = 4  // Simplified -> Traditional (Hong Kong)
	T2S   Config = 5  // Traditional -> Simplified
	T2Tw  Config = 6  // Traditional -> Traditional (Taiwan)
	T2Twp Config = 7  // Traditional -> Traditional (Taiwan, with phrases)
	T2Hk  Config = 8  // Traditional -> Traditional (Hong Kong)
	Tw2S  Config = 9  // Traditional (Taiwan) -> Simplified
	Tw2Sp Config = 10 // Traditional (Taiwan) -> Simplified (with phrases)
	Tw2T  Config = 11 // Traditional (Taiwan) -> Traditional
	Tw2Tp Config = 12 // Traditional (Taiwan) -> Traditional (with phrases)
	Hk2S  Config = 13 // Traditional (Hong Kong) -> Simplified
	Hk2T  Config = 14 // Traditional (Hong Kong) -> Traditional
	Jp2T  Config = 15 // Japanese Shinjitai -> Traditional
	T2Jp  Config = 16 // Traditional -> Japanese Shinjitai
)

var configNames = map[Config]string{
	S2T:   "s2t",
	S2Tw:  "s2tw",
	S2Twp: "s2twp",
	S2Hk:  "s2hk",
	T2S:   "t2s",
	T2Tw:  "t2tw",
	T2Twp: "t2twp",
	T2Hk:  "t2hk",
	Tw2S:  "tw2s",
	Tw2Sp: "tw2sp",
	Tw2T:  "tw2t",
	Tw2Tp: "tw2tp",
	Hk2S:  "hk2s",
	Hk2T:  "hk2t",
	Jp2T:  "jp2t",
	T2Jp:  "t2jp",
}

var configIDs = func() map[string]Config {
	m := make(map[string]Config, len(configNames))
	for id, name := range configNames {
		m[name] = id
	}
	return m
}()

// ParseConfig resolves a case-insensitive config name like "s2t".
func ParseConfig(name string) (Config, bool) {
	c, ok := configIDs[strings.ToLower(name)]
	return c, ok
}

// Valid reports whether c is one of the defined configurations.
func (c Config) Valid() bool {
	_, ok := configNames[c]
	return ok
}

// String returns the canonical lowercase name, or "" for invalid configs.
func (c Config) String() string {
	return configNames[c]
}

// punctAware reports whether the punctuation flag applies to c. Only the
// configs that cross the Simplified/Traditional boundary substitute
// punctuation; the pure variant mappings ignore the flag.
func (c Config) punctAware() bool {
	switch c {
	case S2T, S2Tw, S2Twp, S2Hk, T2S, Tw2S, Tw2Sp, Hk2S:
		return true
	}
	return false
}

// toTraditional reports the direction of punctuation substitution for c:
// true when the output script is Traditional.
func (c Config) toTraditional() bool {
	switch c {
	case S2T, S2Tw, S2Twp, S2Hk:
		return true
	}
	return false
}
