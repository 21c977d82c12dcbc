package parser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// fallbackEncodings are tried in order for description text that is not
// valid UTF-8. Both vendor tools ship from regions where GBK and Big5
// exports are common.
var fallbackEncodings = []encoding.Encoding{
	simplifiedchinese.GBK,
	traditionalchinese.Big5,
}

// decodeText converts raw description bytes to a string. Valid UTF-8
// passes through; otherwise the fallback encodings are tried, and a
// candidate is accepted only when it decodes without substitutions.
// As a last resort invalid bytes are replaced, never dropped.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	for _, enc := range fallbackEncodings {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err != nil || !utf8.Valid(decoded) {
			continue
		}
		if !strings.ContainsRune(string(decoded), utf8.RuneError) {
			return string(decoded)
		}
	}

	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
