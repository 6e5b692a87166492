package songdata

import (
	"bytes"
	"strconv"
)

// 最終エントリーで0埋めする先頭バイト数
const terminalPrefixSize = 3

// Counter は1エントリー分のカウンター
type Counter []byte

// BuildCounters は16進数2桁の表をカウンターに変換する
// 表全体を検証してから変換するため、不正な値が1つでもあれば何も返さない
func BuildCounters(table [][]string) ([]Counter, error) {
	if err := validateCounterTable(table); err != nil {
		return nil, err
	}

	counters := make([]Counter, 0, len(table))
	for _, row := range table {
		counter := make(Counter, 0, len(row))
		for _, hexPair := range row {
			value, _ := strconv.ParseUint(hexPair, 16, 8)
			counter = append(counter, byte(value))
		}
		counters = append(counters, counter)
	}
	return counters, nil
}

func validateCounterTable(table [][]string) error {
	for rowIndex, row := range table {
		for columnIndex, hexPair := range row {
			if len(hexPair) != 2 {
				return &FormatError{Row: rowIndex, Column: columnIndex, Value: hexPair, Err: ErrCounterLength}
			}
			// NOTE: ParseUintは"+"等の接頭辞を受け付けないので2桁とも16進数であることが保証される
			if _, err := strconv.ParseUint(hexPair, 16, 8); err != nil {
				return &FormatError{Row: rowIndex, Column: columnIndex, Value: hexPair, Err: ErrCounterHex}
			}
		}
	}
	return nil
}

// Terminal は最終エントリー用のカウンターを返す
// 先頭3バイトを0x00にし、残りはそのまま写す。長さは変えない
func (c Counter) Terminal() Counter {
	terminal := Counter(bytes.Clone([]byte(c)))
	clear(terminal[:min(terminalPrefixSize, len(terminal))])
	return terminal
}
