package songdata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ryo-kagawa/go-utils/conditional"
	"golang.org/x/text/encoding"
)

const (
	// DefaultLongNameLimit は長い名前として表示される文字数
	DefaultLongNameLimit = 20
	// DefaultLongNameWidth は長い名前に確保されるバイト数
	DefaultLongNameWidth = 48
	// DefaultFileName は出力ファイル名
	DefaultFileName = "SONGDATA.DIR"
)

// Options はレコードの組み立て方を決める
type Options struct {
	LongNameLimit int
	LongNameWidth int
	// Names が nil なら ShortName
	Names NameEncoder
	// Encoding が nil なら windows-1252
	Encoding encoding.Encoding
}

// DefaultOptions は通常モードの設定を返す
func DefaultOptions() Options {
	return Options{
		LongNameLimit: DefaultLongNameLimit,
		LongNameWidth: DefaultLongNameWidth,
		Names:         ShortName{},
	}
}

func (o *Options) applyDefaults() {
	if o.LongNameLimit <= 0 {
		o.LongNameLimit = DefaultLongNameLimit
	}
	if o.LongNameWidth <= 0 {
		o.LongNameWidth = DefaultLongNameWidth
	}
}

// NameMap は短い名前から長い名前への対応表
// 反復順は最初に追加した順
type NameMap struct {
	keys  []string
	names map[string]string
}

func NewNameMap() *NameMap {
	return &NameMap{
		names: map[string]string{},
	}
}

// Set は既存のキーなら値だけを更新し、順番は変えない
func (m *NameMap) Set(shortName string, longName string) {
	if _, ok := m.names[shortName]; !ok {
		m.keys = append(m.keys, shortName)
	}
	m.names[shortName] = longName
}

func (m *NameMap) Get(shortName string) (string, bool) {
	longName, ok := m.names[shortName]
	return longName, ok
}

func (m *NameMap) Keys() []string {
	return m.keys
}

func (m *NameMap) Len() int {
	return len(m.keys)
}

// Result は書き込んだ量
type Result struct {
	Records int
	Bytes   int64
}

// Writer はSONGDATA形式のレコードを順に書き出す
type Writer struct {
	w       io.Writer
	options Options
	names   NameEncoder
	text    textEncoder
}

func NewWriter(w io.Writer, options Options) *Writer {
	options.applyDefaults()
	names := options.Names
	if names == nil {
		names = ShortName{}
	}
	return &Writer{
		w:       w,
		options: options,
		names:   names,
		text:    newTextEncoder(options.Encoding),
	}
}

// WriteAll は対応表の順にカウンターと組にしてレコードを書く
// どちらかが尽きた時点で終わる。lastShortName に一致するエントリーは最終レコードとして書く
func (w *Writer) WriteAll(names *NameMap, counters []Counter, lastShortName string) (Result, error) {
	result := Result{}
	for index, shortName := range names.Keys() {
		if index >= len(counters) {
			break
		}
		record, err := w.Record(names, shortName, counters[index], shortName == lastShortName)
		if err != nil {
			return result, err
		}
		n, err := w.w.Write(record)
		result.Bytes += int64(n)
		if err != nil {
			return result, err
		}
		result.Records++
	}
	return result, nil
}

// Record は1エントリー分のレコードを組み立てる
func (w *Writer) Record(names *NameMap, shortName string, counter Counter, isLast bool) ([]byte, error) {
	longName, ok := names.Get(shortName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingName, shortName)
	}
	encodedLongName, err := w.text.encode(longName)
	if err != nil {
		return nil, err
	}
	record := PackLimited(encodedLongName, w.options.LongNameLimit, w.options.LongNameWidth, 0x00)

	if shortName == "" {
		record = append(record, emptyNameField()...)
	} else {
		encodedShortName, err := w.text.encode(shortName)
		if err != nil {
			return nil, err
		}
		record = append(record, w.names.EncodeName(encodedShortName)...)
	}

	record = append(
		record,
		conditional.Func(
			isLast,
			func() Counter {
				return counter.Terminal()
			},
			func() Counter {
				return counter
			},
		)...,
	)
	return record, nil
}

// WriteFile は outputPath を新規作成してレコードを書く
// 既に存在するファイルは上書きしない
func WriteFile(outputPath string, options Options, names *NameMap, counters []Counter, lastShortName string) (result Result, err error) {
	file, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrExist):
			return Result{}, fmt.Errorf("%w: %s", ErrOutputExists, outputPath)
		case errors.Is(err, fs.ErrPermission):
			return Result{}, fmt.Errorf("%w: %s: %w", ErrPermission, outputPath, err)
		}
		return Result{}, err
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	buffer := bufio.NewWriter(file)
	result, err = NewWriter(buffer, options).WriteAll(names, counters, lastShortName)
	if err != nil {
		return result, err
	}
	if err := buffer.Flush(); err != nil {
		return result, err
	}
	return result, nil
}
