package songdata

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat はカウンター表の16進数文字列が不正であることを示す
	ErrFormat = errors.New("カウンター表の形式が不正です")
	// ErrCounterLength は16進数文字列が2文字ではないことを示す
	ErrCounterLength = fmt.Errorf("%w: 16進数は2桁で指定してください", ErrFormat)
	// ErrCounterHex は16進数として解釈できないことを示す
	ErrCounterHex = fmt.Errorf("%w: 16進数として解釈できません", ErrFormat)
	// ErrMissingName は短い名前に対応する長い名前が存在しないことを示す
	ErrMissingName = errors.New("長い名前が見つかりません")
	// ErrOutputExists は出力先ファイルが既に存在することを示す
	ErrOutputExists = errors.New("出力先ファイルが既に存在します")
	// ErrPermission は出力先へのアクセス権限がないことを示す
	ErrPermission = errors.New("アクセス権限がありません")
	// ErrUnencodable は出力の文字コードで表せない文字が含まれることを示す
	ErrUnencodable = errors.New("出力の文字コードで表せない文字があります")
	// ErrUnsupportedEncoding は1文字1バイトではない文字コードが指定されたことを示す
	ErrUnsupportedEncoding = errors.New("1バイト文字コード以外は指定できません")
)

// FormatError はカウンター表の不正な位置を保持する
type FormatError struct {
	Row    int
	Column int
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%d行%d列 %q: %v", e.Row+1, e.Column+1, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
