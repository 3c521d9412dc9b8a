package defines

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the code page the resource headers were saved with.
// The comments are Korean, so anything else garbles them.
const DefaultEncoding = "euc-kr"

// LookupEncoding resolves a WHATWG encoding label such as "euc-kr",
// "windows-949", "windows-1252" or "utf-8". An empty label selects DefaultEncoding.
func LookupEncoding(label string) (encoding.Encoding, error) {
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported text encoding %q: %w", label, err)
	}
	return enc, nil
}

func decodeText(enc encoding.Encoding, b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ""
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return strings.TrimSpace(string(out))
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// encodeText encodes a trailing comment. Line breaks become spaces since the
// comment has to end with the line it is written on.
func encodeText(enc encoding.Encoding, s string) []byte {
	s = lineBreaks.Replace(s)
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}
