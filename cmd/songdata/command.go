package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	units "github.com/docker/go-units"
	"github.com/ryo-kagawa/SongData/types/library"
	"github.com/ryo-kagawa/SongData/types/songdata"
	"github.com/ryo-kagawa/go-utils/commandline"
	"github.com/spf13/pflag"
)

var ErrUsage = errors.New("引数が不正です")

type Command struct{}

var _ = (commandline.RootCommand)(Command{})

func (Command) Execute(arguments []string) (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return run(config, arguments)
}

func newFlagSet(config Config) (*pflag.FlagSet, *string, *bool, *string) {
	flags := pflag.NewFlagSet("songdata", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	fileNameFlag := flags.StringP("file-name", "f", config.FileName, "出力するファイル名")
	directoryFileFlag := flags.BoolP("directory-file", "d", false, "ディレクトリ形式のファイルを作成する")
	countersFlag := flags.StringP("counters", "c", config.CounterTablePath, "カウンター表CSVのパス")
	return flags, fileNameFlag, directoryFileFlag, countersFlag
}

func usage(flags *pflag.FlagSet) string {
	return "Usage: songdata [options] <input.csv> <output-directory>\n\n" + flags.FlagUsages()
}

func run(config Config, arguments []string) (string, error) {
	flags, fileNameFlag, directoryFileFlag, countersFlag := newFlagSet(config)
	if err := flags.Parse(arguments); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return usage(flags), nil
		}
		return "", fmt.Errorf("%w: %w\n\n%s", ErrUsage, err, usage(flags))
	}
	if flags.NArg() != 2 {
		return "", fmt.Errorf("%w\n\n%s", ErrUsage, usage(flags))
	}
	libraryPath := flags.Arg(0)
	outputPath := filepath.Join(flags.Arg(1), *fileNameFlag)

	options, err := config.Options(*directoryFileFlag)
	if err != nil {
		return "", err
	}
	// NOTE: UTF-8以外のライブラリは出力と同じ文字コードで保存されたものとして読む
	lib, err := library.Load(libraryPath, options.Encoding)
	if err != nil {
		return "", err
	}
	table, err := library.LoadCounterTable(*countersFlag)
	if err != nil {
		return "", err
	}
	// NOTE: 出力ファイルを作る前にカウンター表全体を検証する
	counters, err := songdata.BuildCounters(table)
	if err != nil {
		return "", fmt.Errorf("%s: %w", *countersFlag, err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("%w: %w", songdata.ErrPermission, err)
		}
		return "", err
	}
	result, err := songdata.WriteFile(outputPath, options, lib.Names, counters, lib.LastShortName)
	if err != nil {
		return "", err
	}

	return strings.Join(
		[]string{
			outputPath,
			fmt.Sprintf("%d records (%s)", result.Records, units.HumanSize(float64(result.Bytes))),
		},
		"\n",
	) + "\n", nil
}
