package config

import "os"

const (
	appNameVar     = "APP_NAME"
	baseURLVar     = "QUIZ_API_BASE_URL"
	refreshPathVar = "QUIZ_API_REFRESH_PATH"
	logoutPathVar  = "QUIZ_API_LOGOUT_PATH"
)

type EnvVars struct{}

var _ Config = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Quiz Console")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetBaseURL returns the backend base URL. Endpoint paths are appended to it
// verbatim, so it carries any path prefix (e.g. "/api") but no trailing slash.
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://localhost:8000/api")
}

func (EnvVars) GetRefreshPath() string {
	return GetEnv(refreshPathVar, "/auth/refresh/")
}

func (EnvVars) GetLogoutPath() string {
	return GetEnv(logoutPathVar, "/auth/logout/")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
