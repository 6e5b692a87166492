package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ryo-kagawa/SongData/types/songdata"
)

const fileName = "config.json"

type Config struct {
	CounterTablePath string `json:"counterTablePath"`
	FileName         string `json:"fileName"`
	Encoding         string `json:"encoding"`
	Extension        string `json:"extension"`
	LongNameLimit    int    `json:"longNameLimit"`
	LongNameWidth    int    `json:"longNameWidth"`
}

func DefaultConfig() Config {
	return Config{
		CounterTablePath: filepath.Join("data-files", "standard-counted-entries.csv"),
		FileName:         songdata.DefaultFileName,
		Encoding:         songdata.DefaultEncodingName,
		Extension:        songdata.DefaultExtension,
		LongNameLimit:    songdata.DefaultLongNameLimit,
		LongNameWidth:    songdata.DefaultLongNameWidth,
	}
}

// LoadConfig は実行ファイルと同じディレクトリの config.json を読み込む
// 無ければ既定値を使う
func LoadConfig() (Config, error) {
	exeFilePath, err := os.Executable()
	if err != nil {
		return Config{}, err
	}
	return loadConfigFrom(filepath.Dir(exeFilePath))
}

func loadConfigFrom(directory string) (Config, error) {
	config := DefaultConfig()
	binary, err := os.ReadFile(filepath.Join(directory, fileName))
	if errors.Is(err, fs.ErrNotExist) {
		config.CounterTablePath = resolvePath(directory, config.CounterTablePath)
		return config, nil
	}
	if err != nil {
		return Config{}, err
	}

	if err := json.Unmarshal(binary, &config); err != nil {
		return Config{}, err
	}
	config.CounterTablePath = resolvePath(directory, config.CounterTablePath)

	return config, nil
}

// NOTE: 相対パスは実行ファイルのディレクトリを基準にする
func resolvePath(directory string, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(directory, path)
}

func (c Config) Options(directoryFile bool) (songdata.Options, error) {
	textEncoding, err := songdata.LookupEncoding(c.Encoding)
	if err != nil {
		return songdata.Options{}, err
	}
	options := songdata.Options{
		LongNameLimit: c.LongNameLimit,
		LongNameWidth: c.LongNameWidth,
		Names:         songdata.ShortName{Extension: c.Extension},
		Encoding:      textEncoding,
	}
	if directoryFile {
		options.Names = songdata.DirectoryName{}
	}
	return options, nil
}
