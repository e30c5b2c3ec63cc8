package config

type Config interface {
	EnvConfig
	EndpointConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
}

// EndpointConfig describes where the backend lives and where its auth
// endpoints are mounted. The refresh and logout paths vary between
// deployments, so both are overridable.
type EndpointConfig interface {
	GetBaseURL() string
	GetRefreshPath() string
	GetLogoutPath() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}
