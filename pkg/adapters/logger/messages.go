package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Run level
		"Starting render":                                                "レンダリングを開始します",
		"Total time taken: %s":                                           "合計所要時間: %s",
		"%d frames saved, %d failed":                                     "%d フレームを保存しました (失敗 %d)",
		"Interrupted, shutting down...":                                  "中断されました。シャットダウン中...",
		"Interrupted, saving captured frames (interrupt again to abort)": "中断されました。キャプチャ済みのフレームを保存します（再度中断で終了）",
		"Failed to render frames: %s":                                    "フレームのレンダリングに失敗しました: %s",
		"Failed to save frames: %s":                                      "フレームの保存に失敗しました: %s",
		"Summary written to %s":                                          "サマリーを %s に書き込みました",
		"Preview mode, frames are not captured":                          "プレビューモード: フレームは保存されません",

		// Render stage
		"Rendering up to %d frames at %dx%d":  "最大 %d フレームを %dx%d でレンダリング中",
		"RENDERED: %s":                        "レンダリング済み: %s",
		"Render loop stopped after %d frames": "%d フレームでレンダリングを終了しました",
		"Frame %d rendered in %s":             "フレーム %d を %s でレンダリングしました",

		// Save stage
		"Saving %d frames to %s":                "%d フレームを %s に保存中",
		"SAVED: %s":                             "保存済み: %s",
		"Failed to save frame %d to %s: %v":     "フレーム %d を %s に保存できませんでした: %v",
		"Save interrupted, releasing %d frames": "保存が中断されました。%d フレームを破棄します",

		// Convert stage
		"Converting %d frames to %s with %d workers": "%d フレームを %s に %d ワーカーで変換中",
		"Failed to convert %s: %v":                   "%s の変換に失敗しました: %v",
		"Converted %d frames":                        "%d フレームを変換しました",

		// Drivers
		"Compiling shader %s":          "シェーダー %s をコンパイル中",
		"Opening %dx%d window":         "%dx%d のウィンドウを開いています",
		"OpenGL %s":                    "OpenGL %s",
		"FOV: %.2f Camera Speed: %.4f": "視野角: %.2f カメラ速度: %.4f",

		// Errors
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
