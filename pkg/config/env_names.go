package config

// EnvPrefix is applied by envconfig on top of the explicit tags below.
const EnvPrefix = "DOODLEART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvCheckoutProcessingDelay = "DOODLEART_CHECKOUT_PROCESSING_DELAY"
	EnvCheckoutSuccessTTL      = "DOODLEART_CHECKOUT_SUCCESS_TTL"
)
