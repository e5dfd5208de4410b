package domain

// EngineConfig is the viper-unmarshalled configuration for the host
// entrypoint: the seed pool composition, per-scope rebalancing configs,
// and the initial admin/moderator roles.
type EngineConfig struct {
	AlloyedDenom             string           `mapstructure:"alloyed_denom"`
	AlloyedNormalizationFact string           `mapstructure:"alloyed_normalization_factor"`
	Assets                   []AssetSeed      `mapstructure:"assets"`
	AssetGroups              []AssetGroupSeed `mapstructure:"asset_groups"`
	RebalancingConfigs       []RebalancerSeed `mapstructure:"rebalancing_configs"`
	Admin                    string           `mapstructure:"admin"`
	Moderator                string           `mapstructure:"moderator"`
	Logger                   LoggerConfig     `mapstructure:"logger"`
}

// AssetSeed is the config-file shape of one pool asset at engine startup.
type AssetSeed struct {
	Denom               string `mapstructure:"denom"`
	Amount              string `mapstructure:"amount"`
	NormalizationFactor string `mapstructure:"normalization_factor"`
}

// AssetGroupSeed is the config-file shape of one asset group at startup.
type AssetGroupSeed struct {
	Label  string   `mapstructure:"label"`
	Denoms []string `mapstructure:"denoms"`
}

// RebalancerSeed is the config-file shape of one scope's rebalancing
// config at startup.
type RebalancerSeed struct {
	ScopeKey        string `mapstructure:"scope"`
	CriticalLower   string `mapstructure:"critical_lower"`
	IdealLower      string `mapstructure:"ideal_lower"`
	IdealUpper      string `mapstructure:"ideal_upper"`
	CriticalUpper   string `mapstructure:"critical_upper"`
	Limit           string `mapstructure:"limit"`
	RateStrained    string `mapstructure:"rate_strained"`
	RateCritical    string `mapstructure:"rate_critical"`
}

// LoggerConfig controls the zap logger built for the host process.
type LoggerConfig struct {
	IsProduction bool   `mapstructure:"is_production"`
	Level        string `mapstructure:"level"`
}
