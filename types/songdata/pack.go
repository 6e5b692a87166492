package songdata

import (
	"bytes"

	"github.com/ryo-kagawa/go-utils/strings"
)

// Pack は text を width バイトに揃える
// 短ければ pad で埋め、長ければ width で切り詰める
func Pack(text []byte, width int, pad byte) []byte {
	switch {
	case len(text) == width:
		return bytes.Clone(text)
	case len(text) < width:
		// NOTE: PadRightが文字数で数えても width バイトに揃うよう切り詰める
		padded := []byte(strings.PadRight(string(text), string([]byte{pad}), width))
		return padded[:width]
	default:
		return bytes.Clone(text[:width])
	}
}

// PackLimited は text を limit バイトで切り詰めてから width バイトに揃える
func PackLimited(text []byte, limit int, width int, pad byte) []byte {
	if len(text) > limit {
		text = text[:limit]
	}
	return Pack(text, width, pad)
}
