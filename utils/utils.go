package utils

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var encoders = []encoding.Encoding{
	japanese.ShiftJIS,
	japanese.EUCJP,
}

// BOM付きUTF-8で保存された表計算ソフトのCSVに対応する
const utf8BOM = "\uFEFF"

// ReadTextFileToUTF8 はUTF-8以外なら fallbacks、Shift_JIS、EUC-JPの順に変換を試す
func ReadTextFileToUTF8(filePath string, fallbacks ...encoding.Encoding) (string, error) {
	binary, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	if utf8.Valid(binary) {
		return strings.TrimPrefix(string(binary), utf8BOM), nil
	}
	for _, encoder := range slices.Concat(fallbacks, encoders) {
		reader := transform.NewReader(
			bytes.NewReader(binary),
			encoder.NewDecoder(),
		)
		newBinary, err := io.ReadAll(reader)
		if err != nil {
			continue
		}
		if utf8.Valid(newBinary) {
			return string(newBinary), nil
		}
	}
	return "", errors.New("元の文字コードが特定できませんでした")
}

// ReadCSV はCSVファイルを全行読み込む
// 行ごとの列数は揃っていなくてもよい
func ReadCSV(filePath string, fallbacks ...encoding.Encoding) ([][]string, error) {
	text, err := ReadTextFileToUTF8(filePath, fallbacks...)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
