package constants

// viper keys
const (
	ViperKeyListenAddr = "server.addr"
	ViperKeyCORSOrigin = "server.cors_origin"
	ViperKeyDebug      = "server.debug"
	ViperKeyDataDir    = "data.dir"
	ViperKeyDataFiles  = "data.files"
)

// Survey scope. The dataset is clipped to one city and one fuel; these are
// deliberate constants, not configuration.
const (
	TargetCity = "BELO HORIZONTE"
	TargetFuel = "GASOLINA"
)
