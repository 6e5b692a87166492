package songdata

import "bytes"

const (
	shortNameBaseSize = 8
	shortNameExtSize  = 3
	// NameFieldSize は通常モードでのファイル名領域のバイト数
	NameFieldSize = shortNameBaseSize + shortNameExtSize
	// DefaultExtension はファイル名に付ける拡張子
	DefaultExtension = "MID"
)

// NameEncoder はファイル名領域の書き方を決める
// 実行ごとに1つ選び、全レコードに同じものを使う
type NameEncoder interface {
	EncodeName(name []byte) []byte
}

var (
	_ = (NameEncoder)(ShortName{})
	_ = (NameEncoder)(DirectoryName{})
)

// ShortName は8.3形式のファイル名を書く
type ShortName struct {
	// Extension は空なら DefaultExtension
	Extension string
}

func (s ShortName) EncodeName(name []byte) []byte {
	extension := []byte(s.Extension)
	if len(extension) == 0 {
		extension = []byte(DefaultExtension)
	}
	return append(
		Pack(name, shortNameBaseSize, ' '),
		Pack(extension, shortNameExtSize, ' ')...,
	)
}

// DirectoryName はディレクトリ名をそのまま書く
// NOTE: 幅は固定されないため、ディレクトリ形式ではレコード長が揃わない
type DirectoryName struct{}

func (DirectoryName) EncodeName(name []byte) []byte {
	return bytes.Clone(name)
}

// emptyNameField はファイル名が無いエントリーの名前領域
func emptyNameField() []byte {
	return make([]byte, NameFieldSize)
}
