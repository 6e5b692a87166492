package songdata

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncodingName は文字コード未指定時に使う名前
const DefaultEncodingName = "windows-1252"

// LookupEncoding は名前から1バイト文字コードを探す
func LookupEncoding(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultEncodingName
	}
	textEncoding, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedEncoding, name, err)
	}
	// NOTE: 幅をバイト数で数えるので1文字1バイトの文字コードに限る
	if _, ok := textEncoding.(*charmap.Charmap); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}
	return textEncoding, nil
}

// textEncoder は文字列を1バイト文字コードのバイト列にする
// 変換できない文字があれば ErrUnencodable を返す
type textEncoder struct {
	encoder *encoding.Encoder
}

func newTextEncoder(textEncoding encoding.Encoding) textEncoder {
	if textEncoding == nil {
		textEncoding = charmap.Windows1252
	}
	return textEncoder{
		encoder: textEncoding.NewEncoder(),
	}
}

func (e textEncoder) encode(text string) ([]byte, error) {
	encoded, err := e.encoder.Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnencodable, text, err)
	}
	return encoded, nil
}
