// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 包含 bearer token 驗證、請求日誌（附 request id）以及登入端點的限流。
package middleware
