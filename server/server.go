package server

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"safetravelbuddy/server/auth/key"
	"safetravelbuddy/server/logger"
	"safetravelbuddy/server/models"
	"safetravelbuddy/server/twilio"
	"safetravelbuddy/server/work"
	"safetravelbuddy/shared"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"github.com/spf13/viper"
)

var (
	logg     = logger.NewLogger()
	validate *validator.Validate

	serverConfig *shared.ServerConfig
	authKeyPair  *key.KeyPair
	workerPool   *work.WorkerPoolAdapter
	smsClient    *twilio.ClientWrapper
	dataRootDir  string
)

func init() {
	validate = validator.New()
	if err := RegisterValidators(validate); err != nil {
		logg.Panic(err)
	}
}

// Start boots the whole server: config, db, key pair, background jobs
// & the http listener. It blocks until the process is signalled to stop.
func Start(config *viper.Viper, devMode bool) {
	serverConfig = &shared.ServerConfig{}
	fatalOnError(config.Unmarshal(serverConfig))
	fatalOnError(validate.Struct(serverConfig))

	var err error
	authKeyPair, err = key.NewKeyPairFromRSAPrivateKeyPem(serverConfig.SafeTravel.PrivateKeyPem)
	fatalOnError(err)

	dataRootDir = configDirectory(devMode)
	fatalOnError(models.AutoMigrate(serverConfig.Sqlite.PassPhrase, dataRootDir))

	// Twilio only sends real sms in prod
	smsClient = twilio.NewClient(serverConfig.Twilio, devMode)

	workerPool = work.NewWorkerAdapter(serverConfig.SafeTravel.Cron.TimeZone)
	registerJobHandlers(workerPool)
	enqueuePeriodicJobs(workerPool)
	fatalOnError(workerPool.Start())

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%v", serverConfig.SafeTravel.Listener.Port),
		Handler: newRouter(),
	}
	go serve(httpServer)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	backupEnabled := fmt.Sprintf("%v", serverConfig.Google.Storage.EnableSqliteBackupAndSync) == "true"
	cleanup(workerPool, httpServer, backupEnabled)
}

func newRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware)
	router.Use(initialContextMiddleware)

	router.HandleFunc("/api/auth/register", registerUser).Methods("POST")
	router.HandleFunc("/api/auth/login", logIn).Methods("POST")
	router.HandleFunc("/.well-known/jwks.json", jwks).Methods("GET")

	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(protectedRouteMiddleware)
	protected.HandleFunc("/user/me", currentUser).Methods("GET")
	protected.HandleFunc("/journeys/start", startJourney).Methods("POST")
	protected.HandleFunc("/journeys", listJourneys).Methods("GET")
	protected.HandleFunc("/sos/dispatch", dispatchSos).Methods("POST")

	return router
}
