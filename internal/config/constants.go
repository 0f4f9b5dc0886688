// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "CourseKeep"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultAuthEnabled    = false
	DefaultAccessTokenTTL = time.Hour
	DefaultJWTSecretKey   = "insecure-development-key"
	DefaultMailerType     = "log"
)

