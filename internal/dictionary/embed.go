package dictionary

import (
	"bytes"
	_ "embed"
)

//go:embed wordlist.csv
var embeddedCorpus []byte

// Embedded returns the built-in corpus compiled into the binary, parsed
// through the same path as any other CSV source.
func Embedded() (*Dictionary, error) {
	return LoadCSV(bytes.NewReader(embeddedCorpus))
}
