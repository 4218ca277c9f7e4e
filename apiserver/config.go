package main

// nolint: lll
import (
	"context"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/kelseyhightower/envconfig"
	"github.com/krancour/courtside/apiserver/internal/authx"
	authxMongodb "github.com/krancour/courtside/apiserver/internal/authx/mongodb"
	authxRedis "github.com/krancour/courtside/apiserver/internal/authx/redis"
	authxREST "github.com/krancour/courtside/apiserver/internal/authx/rest"
	"github.com/krancour/courtside/apiserver/internal/lib/mongodb"
	"github.com/krancour/courtside/apiserver/internal/lib/oidc"
	"github.com/krancour/courtside/apiserver/internal/lib/redis"
	"github.com/krancour/courtside/apiserver/internal/lib/restmachinery"
	"github.com/krancour/courtside/apiserver/internal/lib/restmachinery/authn"
	"github.com/krancour/courtside/apiserver/internal/reservations"
	"github.com/krancour/courtside/apiserver/internal/reservations/keyvault"
	"github.com/krancour/courtside/apiserver/internal/reservations/local"
	reservationsREST "github.com/krancour/courtside/apiserver/internal/reservations/rest"
	"github.com/pkg/errors"
)

const (
	sessionsStoreMongoDB = "mongodb"
	sessionsStoreRedis   = "redis"
)

type storesConfig struct {
	SessionsStore string `envconfig:"SESSIONS_STORE" default:"mongodb"`
}

func verbosityFromEnvironment() int {
	verbosity, err := strconv.Atoi(os.Getenv("LOG_VERBOSITY"))
	if err != nil {
		return 0
	}
	return verbosity
}

func getAPIServerFromEnvironment(
	ctx context.Context,
	logger logr.Logger,
) (restmachinery.Server, error) {

	// API server config
	apiConfig, err := restmachinery.GetConfigFromEnvironment()
	if err != nil {
		return nil, errors.Wrap(err, "error getting API server configuration")
	}

	// Sessions
	provider, err := oidc.GetProviderFromEnvironment(ctx)
	if err != nil {
		return nil, err
	}
	sessionsConfig, err := authx.GetSessionsServiceConfigFromEnvironment()
	if err != nil {
		return nil, errors.Wrap(err, "error getting sessions configuration")
	}
	sessionsConfig.ProviderName = provider.Name
	sessionsStore, err := getSessionsStoreFromEnvironment(ctx, logger)
	if err != nil {
		return nil, err
	}
	sessionsService := authx.NewSessionsService(
		sessionsConfig,
		sessionsStore,
		provider.OAuth2Config,
		authx.NewOIDCIdentityVerifier(provider.Verifier),
		authx.NewKeycloakLogoutNotifier(provider.IssuerURL, provider.Name),
	)

	// Reservations
	reservationsConfig, err := reservations.GetServiceConfigFromEnvironment()
	if err != nil {
		return nil, errors.Wrap(err, "error getting reservations configuration")
	}
	upstreamConfig, err := reservations.GetUpstreamConfigFromEnvironment()
	if err != nil {
		return nil, errors.Wrap(err, "error getting upstream configuration")
	}
	keyStore, err := getKeyStoreFromEnvironment(logger)
	if err != nil {
		return nil, err
	}
	reservationsService := reservations.NewService(
		authx.Authorize,
		reservationsConfig,
		reservations.NewUpstreamClient(upstreamConfig),
		reservations.NewDecryptor(keyStore),
	)

	baseEndpoints := &restmachinery.BaseEndpoints{
		SessionFilter: authn.NewSessionFilter(sessionsService.GetByToken),
	}

	return restmachinery.NewServer(
		apiConfig,
		baseEndpoints,
		[]restmachinery.Endpoints{
			authxREST.NewSessionsEndpoints(
				baseEndpoints,
				sessionsService,
				apiConfig.CookieSecure(),
			),
			reservationsREST.NewReservationsEndpoints(
				baseEndpoints,
				reservationsService,
			),
		},
		logger,
	), nil
}

func getSessionsStoreFromEnvironment(
	ctx context.Context,
	logger logr.Logger,
) (authx.SessionsStore, error) {
	c := storesConfig{}
	if err := envconfig.Process("", &c); err != nil {
		return nil, errors.Wrap(err, "error getting store configuration")
	}
	switch c.SessionsStore {
	case sessionsStoreMongoDB:
		database, err := mongodb.Database(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("using MongoDB sessions store", "database", database.Name())
		return authxMongodb.NewSessionsStore(database)
	case sessionsStoreRedis:
		redisClient, err := redis.Client()
		if err != nil {
			return nil, err
		}
		logger.Info("using Redis sessions store")
		return authxRedis.NewSessionsStore(redisClient), nil
	}
	return nil, errors.Errorf(
		"unsupported sessions store %q; supported stores are %q and %q",
		c.SessionsStore,
		sessionsStoreMongoDB,
		sessionsStoreRedis,
	)
}

func getKeyStoreFromEnvironment(
	logger logr.Logger,
) (reservations.KeyStore, error) {
	localConfig, err := local.GetConfigFromEnvironment()
	if err != nil {
		return nil, errors.Wrap(err, "error getting local key store configuration")
	}
	if localConfig.PrivateKeyPath != "" {
		logger.Info(
			"using local key store",
			"path",
			localConfig.PrivateKeyPath,
		)
		return local.NewKeyStoreFromFile(
			localConfig.PrivateKeyPath,
			localConfig.Algorithm,
		)
	}
	keyVaultConfig, err := keyvault.GetConfigFromEnvironment()
	if err != nil {
		return nil, errors.Wrap(err, "error getting Azure Key Vault configuration")
	}
	if keyVaultConfig.URL == "" || keyVaultConfig.KeyName == "" {
		logger.Info(
			"Azure Key Vault is not configured; reservations cannot be decrypted",
		)
	}
	return keyvault.NewKeyStore(keyVaultConfig)
}
