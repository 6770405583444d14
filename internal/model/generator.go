package model

// GenerateRequest configures a passphrase generation. Zero-valued fields fall
// back to the server defaults, so an empty body is a valid request.
type GenerateRequest struct {
	MinWordLength int `json:"min_word_length"`
	MaxWordLength int `json:"max_word_length"`
	Words         int `json:"words"`
}

// GenerateResponse carries a generated passphrase. Length counts characters,
// not bytes.
type GenerateResponse struct {
	Passphrase string `json:"passphrase"`
	Length     int    `json:"length"`
	Words      int    `json:"words"`
}

// DictionaryInfo describes the shape of the corpus a generator samples from.
type DictionaryInfo struct {
	Words     int   `json:"words"`
	Lengths   []int `json:"lengths"`
	MinLength int   `json:"min_length"`
	MaxLength int   `json:"max_length"`
}
