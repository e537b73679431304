package edinet

import "errors"

var (
	// ErrNotFound indicates the company code is not registered in EDINET.
	// 呼び出し側は企業検索で有効なコードを取得し直すことになる。
	ErrNotFound = errors.New("指定された企業コードはEDINETに存在しません")

	// ErrAuthRejected indicates the upstream rejected the API key.
	// 呼び出し元の誤りではなく運用側の設定不備なので、サービス利用不可として扱う。
	ErrAuthRejected = errors.New("EDINET APIの認証に失敗しました")
)
