// Package main provides localization for the mandelfly CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":   "入力",
		"Frames":  "フレーム",
		"Camera":  "カメラ",
		"Output":  "出力先",
		"Logging": "ログ",

		// Root command
		"Fly through a Mandelbulb and capture the frames as bitmaps": "マンデルバルブの中を飛行し、フレームをビットマップとして保存",

		// Render command
		"Render frames and save them as bitmaps":                                                                     "フレームをレンダリングしてビットマップとして保存",
		"Render up to --frames frames, keep them in memory, then write frame_<n>.bmp files to the output directory.": "最大 --frames 枚のフレームをメモリに保持し、出力ディレクトリに frame_<n>.bmp として書き出します。",

		// Convert command
		"Convert saved bitmaps to another image format":                     "保存したビットマップを別の画像形式に変換",
		"Re-encode every frame_<n>.bmp in a directory as png, webp or tga.": "ディレクトリ内の frame_<n>.bmp を png、webp、tga に再エンコードします。",
		"A frames directory argument is required":                           "フレームディレクトリの引数が必要です",

		// Version command
		"Show version information": "バージョン情報を表示",
		"mandelfly version %s":     "mandelfly バージョン %s",

		// Input flags
		"YAML configuration file":           "YAML設定ファイル",
		"Render driver (bulb, pattern, gl)": "レンダリングドライバー（bulb, pattern, gl）",
		"Shader file for the gl driver":     "glドライバー用のシェーダーファイル",

		// Frame flags
		"Frame width (default: 1000)":                               "フレームの幅（デフォルト: 1000）",
		"Frame height (default: 1000)":                              "フレームの高さ（デフォルト: 1000）",
		"Number of frames to capture (default: 2000)":               "キャプチャするフレーム数（デフォルト: 2000）",
		"Rows traced in parallel by the bulb driver (0 = all CPUs)": "bulbドライバーが並列に処理する行数（0 = 全CPU）",

		// Camera flags
		"Camera field of view in degrees":         "カメラの視野角（度）",
		"Keys held on every frame, e.g. s or s+a": "毎フレーム押し続けるキー（例: s, s+a）",

		// Output flags
		"Output directory for frame_<n>.bmp files":           "frame_<n>.bmp の出力ディレクトリ",
		"Render without saving frames":                       "フレームを保存せずにレンダリング",
		"In preview, keep rendering until the window closes": "プレビュー時、ウィンドウを閉じるまでレンダリングを続ける",
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",
		"Target format (png, webp, tga)":                     "変換先の形式（png, webp, tga）",
		"Output directory (default: the input directory)":    "出力ディレクトリ（デフォルト: 入力ディレクトリ）",
		"Frames converted in parallel (0 = all CPUs)":        "並列に変換するフレーム数（0 = 全CPU）",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Summary content
		"Render Summary":                "レンダリングサマリー",
		"Generated":                     "生成日時",
		"Render":                        "レンダリング",
		"Item":                          "項目",
		"Value":                         "値",
		"Source":                        "ソース",
		"Frame Size":                    "フレームサイズ",
		"Frames Rendered":               "レンダリング済みフレーム",
		"Frames Captured":               "キャプチャ済みフレーム",
		"Stopped Early":                 "途中で停止",
		"Yes":                           "はい",
		"Render Time":                   "レンダリング時間",
		"Position":                      "位置",
		"Yaw / Pitch":                   "ヨー / ピッチ",
		"FOV":                           "視野角",
		"Speed":                         "速度",
		"Autopilot":                     "自動操縦",
		"Preview run, no frames saved.": "プレビュー実行のため、フレームは保存されていません。",
		"Directory":                     "ディレクトリ",
		"Frames Saved":                  "保存済みフレーム",
		"Frames Failed":                 "保存失敗フレーム",
		"Save Time":                     "保存時間",
		"Failed Frames":                 "保存に失敗したフレーム",
		"Total time taken":              "合計所要時間",
	})
}
