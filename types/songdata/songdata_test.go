package songdata

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func nameMapOf(pairs ...string) *NameMap {
	names := NewNameMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		names.Set(pairs[i], pairs[i+1])
	}
	return names
}

func longNameField(content string) []byte {
	return append([]byte(content), bytes.Repeat([]byte{0x00}, DefaultLongNameWidth-len(content))...)
}

func TestNameMapKeepsFirstPosition(t *testing.T) {
	t.Parallel()

	names := nameMapOf("A", "first", "B", "second", "A", "third")
	if got := names.Keys(); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("Keys=%q, want [A B]", got)
	}
	if got, _ := names.Get("A"); got != "third" {
		t.Fatalf("Get(A)=%q, want %q", got, "third")
	}
	if _, ok := names.Get("C"); ok {
		t.Fatal("Get(C) found, want missing")
	}
}

func TestShortNameEncodeName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		shortName string
		extension string
		want      string
	}{
		{name: "padded", shortName: "SONG1", want: "SONG1   MID"},
		{name: "exact", shortName: "SONGSONG", want: "SONGSONGMID"},
		{name: "truncated", shortName: "SONGSONG99", want: "SONGSONGMID"},
		{name: "extension", shortName: "LIB", extension: "DIR", want: "LIB     DIR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ShortName{Extension: tc.extension}.EncodeName([]byte(tc.shortName))
			if len(got) != NameFieldSize {
				t.Fatalf("len=%d, want %d", len(got), NameFieldSize)
			}
			if string(got) != tc.want {
				t.Fatalf("EncodeName=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestDirectoryNameEncodeName(t *testing.T) {
	t.Parallel()

	got := DirectoryName{}.EncodeName([]byte("CLASSICAL"))
	if string(got) != "CLASSICAL" {
		t.Fatalf("EncodeName=%q, want %q", got, "CLASSICAL")
	}
}

func TestWriterSingleLastEntry(t *testing.T) {
	t.Parallel()

	counters, err := BuildCounters([][]string{{"00", "01"}})
	if err != nil {
		t.Fatalf("BuildCounters: %v", err)
	}

	var out bytes.Buffer
	result, err := NewWriter(&out, DefaultOptions()).WriteAll(nameMapOf("SONG1", "My Song"), counters, "SONG1")
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	want := longNameField("My Song")
	want = append(want, "SONG1   MID"...)
	want = append(want, 0x00, 0x00)
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("output=% x, want % x", out.Bytes(), want)
	}
	if result.Records != 1 || result.Bytes != int64(len(want)) {
		t.Fatalf("result=%+v, want {Records:1 Bytes:%d}", result, len(want))
	}
}

func TestWriterRecordLayout(t *testing.T) {
	t.Parallel()

	names := nameMapOf(
		"", "Library",
		"SONG1", "A very long song title over twenty",
		"SONG2", "Last",
	)
	counters := []Counter{
		{0x01, 0x02, 0x03, 0x04},
		{0x05, 0x06, 0x07, 0x08},
		{0x09, 0x0A, 0x0B, 0x0C},
	}

	var out bytes.Buffer
	result, err := NewWriter(&out, DefaultOptions()).WriteAll(names, counters, "SONG2")
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	const recordSize = DefaultLongNameWidth + NameFieldSize + 4
	if out.Len() != 3*recordSize {
		t.Fatalf("len=%d, want %d", out.Len(), 3*recordSize)
	}
	if result.Records != 3 {
		t.Fatalf("records=%d, want 3", result.Records)
	}

	var want []byte
	want = append(want, longNameField("Library")...)
	want = append(want, make([]byte, NameFieldSize)...)
	want = append(want, 0x01, 0x02, 0x03, 0x04)
	want = append(want, longNameField("A very long song tit")...)
	want = append(want, "SONG1   MID"...)
	want = append(want, 0x05, 0x06, 0x07, 0x08)
	want = append(want, longNameField("Last")...)
	want = append(want, "SONG2   MID"...)
	want = append(want, 0x00, 0x00, 0x00, 0x0C)
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("output=% x, want % x", out.Bytes(), want)
	}
}

func TestWriterStopsAtShorterSequence(t *testing.T) {
	t.Parallel()

	names := nameMapOf("A", "a", "B", "b", "C", "c")
	counter := Counter{0xAA, 0xBB, 0xCC, 0xDD}

	testCases := []struct {
		name     string
		counters []Counter
		want     int
	}{
		{name: "fewer counters", counters: []Counter{counter}, want: 1},
		{name: "more counters", counters: []Counter{counter, counter, counter, counter, counter}, want: 3},
		{name: "no counters", counters: nil, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			result, err := NewWriter(&out, DefaultOptions()).WriteAll(names, tc.counters, "C")
			if err != nil {
				t.Fatalf("WriteAll: %v", err)
			}
			if result.Records != tc.want {
				t.Fatalf("records=%d, want %d", result.Records, tc.want)
			}
			if out.Len() != tc.want*(DefaultLongNameWidth+NameFieldSize+len(counter)) {
				t.Fatalf("len=%d for %d records", out.Len(), tc.want)
			}
		})
	}
}

func TestWriterEmptyShortNameIgnoresStrategy(t *testing.T) {
	t.Parallel()

	for _, names := range []NameEncoder{ShortName{}, DirectoryName{}} {
		w := NewWriter(&bytes.Buffer{}, Options{Names: names})
		record, err := w.Record(nameMapOf("", "Group"), "", Counter{0x01}, false)
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
		field := record[DefaultLongNameWidth : DefaultLongNameWidth+NameFieldSize]
		if !bytes.Equal(field, make([]byte, NameFieldSize)) {
			t.Fatalf("%T name field=% x, want 11 null bytes", names, field)
		}
	}
}

func TestWriterDirectoryMode(t *testing.T) {
	t.Parallel()

	options := DefaultOptions()
	options.Names = DirectoryName{}

	var out bytes.Buffer
	_, err := NewWriter(&out, options).WriteAll(nameMapOf("JAZZ", "Jazz Standards"), []Counter{{0x10, 0x20, 0x30, 0x40}}, "")
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	want := longNameField("Jazz Standards")
	want = append(want, "JAZZ"...)
	want = append(want, 0x10, 0x20, 0x30, 0x40)
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("output=% x, want % x", out.Bytes(), want)
	}
}

func TestWriterMissingName(t *testing.T) {
	t.Parallel()

	w := NewWriter(&bytes.Buffer{}, DefaultOptions())
	_, err := w.Record(nameMapOf("A", "a"), "B", Counter{0x00}, false)
	if !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
}

func TestWriterSingleByteEncoding(t *testing.T) {
	t.Parallel()

	options := DefaultOptions()
	options.Encoding = charmap.Windows1252

	w := NewWriter(&bytes.Buffer{}, options)
	record, err := w.Record(nameMapOf("CAFE", "Café"), "CAFE", Counter{}, false)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	want := append([]byte{'C', 'a', 'f', 0xE9}, make([]byte, DefaultLongNameWidth-4)...)
	if !bytes.Equal(record[:DefaultLongNameWidth], want) {
		t.Fatalf("long name field=% x, want % x", record[:DefaultLongNameWidth], want)
	}
}

func TestWriterCustomWidths(t *testing.T) {
	t.Parallel()

	options := DefaultOptions()
	options.LongNameLimit = 4
	options.LongNameWidth = 6

	w := NewWriter(&bytes.Buffer{}, options)
	record, err := w.Record(nameMapOf("S", "Songbook"), "S", Counter{0xFF}, false)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	want := []byte{'S', 'o', 'n', 'g', 0x00, 0x00}
	want = append(want, "S       MID"...)
	want = append(want, 0xFF)
	if !bytes.Equal(record, want) {
		t.Fatalf("record=% x, want % x", record, want)
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), DefaultFileName)
	result, err := WriteFile(outputPath, DefaultOptions(), nameMapOf("SONG1", "My Song"), []Counter{{0x00, 0x01}}, "SONG1")
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	written, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if int64(len(written)) != result.Bytes {
		t.Fatalf("file size=%d, want %d", len(written), result.Bytes)
	}
	if len(written) != DefaultLongNameWidth+NameFieldSize+2 {
		t.Fatalf("file size=%d, want %d", len(written), DefaultLongNameWidth+NameFieldSize+2)
	}
}

func TestWriteFileRefusesExisting(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), DefaultFileName)
	original := []byte("keep me")
	if err := os.WriteFile(outputPath, original, 0644); err != nil {
		t.Fatalf("write existing: %v", err)
	}

	_, err := WriteFile(outputPath, DefaultOptions(), nameMapOf("SONG1", "My Song"), []Counter{{0x00, 0x01}}, "SONG1")
	if !errors.Is(err, ErrOutputExists) {
		t.Fatalf("expected ErrOutputExists, got %v", err)
	}

	got, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read existing: %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Fatalf("existing file modified: %q", got)
	}
}
