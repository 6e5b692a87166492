package main

import (
	"errors"

	"github.com/ryo-kagawa/SongData/types/library"
	"github.com/ryo-kagawa/SongData/types/songdata"
)

const (
	exitFailure        = 1
	exitUsage          = 2
	exitInputNotFound  = 3
	exitOutputExists   = 4
	exitPermissionDeny = 5
)

type exitReason struct {
	target  error
	code    int
	message string
}

var exitReasons = []exitReason{
	{
		target:  ErrUsage,
		code:    exitUsage,
		message: "",
	},
	{
		target:  library.ErrInputNotFound,
		code:    exitInputNotFound,
		message: "指定された入力ファイルが存在しません。\nパスを確認してもう一度実行してください。",
	},
	{
		target:  songdata.ErrOutputExists,
		code:    exitOutputExists,
		message: "指定された出力ファイルは既に存在します。\n安全のため、既存のファイルは上書きできません。\n出力先か出力ファイル名を変更するか、既存のファイルを移動・削除してください。",
	},
	{
		target:  songdata.ErrPermission,
		code:    exitPermissionDeny,
		message: "アクセス権限がありません。\n入力ライブラリのパスにディレクトリを指定していないか確認してください。",
	},
}

// exitStatus はエラーの種類ごとの終了コードと説明を返す
func exitStatus(err error) (int, string) {
	for _, reason := range exitReasons {
		if errors.Is(err, reason.target) {
			return reason.code, reason.message
		}
	}
	return exitFailure, ""
}
