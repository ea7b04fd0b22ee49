// Package api 處理 HTTP 請求路由和處理。
//
// 這個包負責建立 gin engine、掛載中間件，並將每個路由對應到 handlers 中的處理器。
// 除了 GET / 與 POST /login 以外，所有路由都需要 bearer token。
package api
