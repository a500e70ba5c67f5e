// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "workforce"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultLogLevel             = "info"
	DefaultTotalDays            = 21
	DefaultIndividualPriceCents = 2900
	DefaultCurrency             = "usd"
	DefaultCertificateIssuer    = "Transformer Hub"
	DefaultCertificateColor     = "#00c892"
	DefaultCertificateBadge     = "WFR"
	DefaultSideEffectTimeout    = 5 * time.Second
)
