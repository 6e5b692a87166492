package library

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/ryo-kagawa/SongData/types/songdata"
	"github.com/ryo-kagawa/SongData/utils"
	"golang.org/x/text/encoding"
)

var (
	// ErrInputNotFound は入力ファイルが存在しないことを示す
	ErrInputNotFound = errors.New("入力ファイルが存在しません")
	// ErrRowShape はライブラリの行が「短い名前,長い名前」の2列ではないことを示す
	ErrRowShape = errors.New("ライブラリの行は2列で指定してください")
	// ErrEmptyLibrary はライブラリに行が無いことを示す
	ErrEmptyLibrary = errors.New("ライブラリが空です")
)

// Library はライブラリCSVの内容
type Library struct {
	Names *songdata.NameMap
	// LastShortName は最終行の短い名前
	LastShortName string
}

// Load はライブラリCSVを読み込む
// 1列目が短い名前、2列目が長い名前
// UTF-8以外のファイルは fallbacks の文字コードから順に試す
func Load(filePath string, fallbacks ...encoding.Encoding) (Library, error) {
	rows, err := readTable(filePath, fallbacks...)
	if err != nil {
		return Library{}, err
	}
	if len(rows) == 0 {
		return Library{}, fmt.Errorf("%w: %s", ErrEmptyLibrary, filePath)
	}

	names := songdata.NewNameMap()
	for index, row := range rows {
		if len(row) != 2 {
			return Library{}, fmt.Errorf("%w: %s %d行目 (%d列)", ErrRowShape, filePath, index+1, len(row))
		}
		names.Set(row[0], row[1])
	}

	return Library{
		Names:         names,
		LastShortName: rows[len(rows)-1][0],
	}, nil
}

// LoadCounterTable はカウンター表CSVを読み込む
func LoadCounterTable(filePath string) ([][]string, error) {
	return readTable(filePath)
}

func readTable(filePath string, fallbacks ...encoding.Encoding) ([][]string, error) {
	rows, err := utils.ReadCSV(filePath, fallbacks...)
	switch {
	case err == nil:
		return rows, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, filePath, err)
	// NOTE: ディレクトリを指定された場合も権限エラーとして扱う
	case errors.Is(err, fs.ErrPermission), errors.Is(err, syscall.EISDIR):
		return nil, fmt.Errorf("%w: %s: %w", songdata.ErrPermission, filePath, err)
	}
	return nil, fmt.Errorf("%s: %w", filePath, err)
}
