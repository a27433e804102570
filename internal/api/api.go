package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/rs/cors"

	"pocket-crm/internal/database"
	"pocket-crm/internal/handlers"
	"pocket-crm/internal/logger"
	"pocket-crm/internal/middleware"
	"pocket-crm/internal/models"
	"pocket-crm/internal/store"
	"pocket-crm/internal/utils"
)

type Api struct {
	db          *sqlx.DB
	router      *mux.Router
	authRouter  *mux.Router
	adminRouter *mux.Router
	Params      models.EnvParams
	handlers.CRMHandlers
	manager *database.DBManager
	log     logger.Logger
}

func NewApi(p models.EnvParams) *Api {
	return &Api{
		Params: p,
	}
}

func (a *Api) SetupAuthRouter() {
	a.authRouter = a.router.PathPrefix("/api").Subrouter()
	a.authRouter.Use(middleware.Auth(a.CRMHandlers.Sessions, a.Params.PasswordHash != ""))
}

func (a *Api) SetupAdminRouter() {
	a.adminRouter = a.router.PathPrefix("/admin").Subrouter()
}

func (a *Api) SetupAllRoutes() {
	a.SetupAuthRouter()
	a.SetupAdminRouter()

	a.SetupAuthenticationRoutes()
	a.SetupContactRoutes()
	a.SetupOrganizationRoutes()
	a.SetupInteractionRoutes()
	a.SetupSearchRoutes()
	a.SetupAdminRoutes()
}

func (a *Api) SetupAuthenticationRoutes() {
	a.router.HandleFunc("/login", a.CRMHandlers.Login).Methods("POST")
	a.authRouter.HandleFunc("/logout", a.CRMHandlers.Logout).Methods("POST")
}

func (a *Api) SetupContactRoutes() {
	a.authRouter.HandleFunc("/contacts", a.CRMHandlers.CreateContact).Methods("POST")
	a.authRouter.HandleFunc("/contacts", a.CRMHandlers.ListContacts).Methods("GET")
	a.authRouter.HandleFunc("/contacts/{id}", a.CRMHandlers.GetContact).Methods("GET")
	a.authRouter.HandleFunc("/contacts/{id}", a.CRMHandlers.UpdateContact).Methods("PUT")
	a.authRouter.HandleFunc("/contacts/{id}", a.CRMHandlers.DeleteContact).Methods("DELETE")
}

func (a *Api) SetupOrganizationRoutes() {
	a.authRouter.HandleFunc("/organizations", a.CRMHandlers.CreateOrganization).Methods("POST")
	a.authRouter.HandleFunc("/organizations", a.CRMHandlers.ListOrganizations).Methods("GET")
	a.authRouter.HandleFunc("/organizations/{id}", a.CRMHandlers.GetOrganization).Methods("GET")
	a.authRouter.HandleFunc("/organizations/{id}", a.CRMHandlers.UpdateOrganization).Methods("PUT")
	a.authRouter.HandleFunc("/organizations/{id}", a.CRMHandlers.DeleteOrganization).Methods("DELETE")
}

func (a *Api) SetupInteractionRoutes() {
	a.authRouter.HandleFunc("/interactions", a.CRMHandlers.CreateInteraction).Methods("POST")
	a.authRouter.HandleFunc("/interactions", a.CRMHandlers.ListInteractions).Methods("GET")
	a.authRouter.HandleFunc("/interactions/{id}", a.CRMHandlers.GetInteraction).Methods("GET")
	a.authRouter.HandleFunc("/interactions/{id}", a.CRMHandlers.UpdateInteraction).Methods("PUT")
	a.authRouter.HandleFunc("/interactions/{id}", a.CRMHandlers.DeleteInteraction).Methods("DELETE")
}

func (a *Api) SetupSearchRoutes() {
	a.authRouter.HandleFunc("/search", a.CRMHandlers.Search).Methods("GET")
}

func (a *Api) SetupAdminRoutes() {
	a.adminRouter.HandleFunc("/health/API", a.CRMHandlers.Hello).Methods("GET")
	a.adminRouter.HandleFunc("/health/DB", a.CRMHandlers.DBPing).Methods("GET")
}

func (a *Api) SetupLogger() {
	a.log = logger.NewConsoleLogger(os.Stderr, "[CRM-API]", logger.LogLevelInfo)
	a.CRMHandlers.Log = a.log
	a.log.Info("Logger initialized")
}

func (a *Api) SetupDatabases() {
	a.log.Info("Setting up API databases")
	manager := database.NewDBManager(a.Params.DbPath)
	manager.Log = a.log

	if err := manager.Connect(); err != nil {
		a.log.Fatal("Cannot connect to database: %v", err)
	}
	if err := manager.ApplyMigrations(); err != nil {
		a.log.Fatal("Cannot apply migrations: %v", err)
	}

	a.log.Info("Setting up session storage")
	sessions, err := manager.InitSessionStore()
	if err != nil {
		a.log.Fatal("Cannot initialize session storage: %v", err)
	}

	a.manager = manager
	a.db = manager.DB
	a.CRMHandlers.DB = manager.DB
	a.CRMHandlers.Store = store.New(manager.DB, a.log)
	a.CRMHandlers.Sessions = sessions
	a.log.Info("DB setup complete")
}

func (a *Api) Start() {
	fmt.Println(models.StartupText)

	a.SetupLogger()

	a.log.Info("Setting JWT secret")
	utils.SetJWTSecret(a.Params.JWTSecret)
	a.CRMHandlers.PasswordHash = a.Params.PasswordHash
	if a.Params.PasswordHash == "" {
		a.log.Warn("CRM_PASSWORD_HASH not set, API is running without authentication")
	}

	a.SetupDatabases()

	a.router = mux.NewRouter()
	a.log.Info("Setting up routes")
	a.SetupAllRoutes()

	killSignal := make(chan os.Signal, 1)
	signal.Notify(killSignal, os.Interrupt, syscall.SIGTERM)

	handler := cors.AllowAll().Handler(a.router)
	server := &http.Server{
		Addr:    ":" + a.Params.ApiPort,
		Handler: handler,
	}

	go func() {
		a.log.Info("Starting API at endpoint: %s", a.Params.ApiPort)
		var err error
		if a.Params.CertFilePath != "" && a.Params.KeyFilePath != "" {
			err = server.ListenAndServeTLS(a.Params.CertFilePath, a.Params.KeyFilePath)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Fatal("Cannot start API: %v", err)
		}
	}()

	<-killSignal
	a.log.Info("Received shutdown signal. Initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		a.log.Error("Server shutdown failed: %v", err)
	}
	a.Stop()
}

func (a *Api) Stop() {
	a.log.Info("Graceful shutdown of services")
	if err := a.CRMHandlers.Sessions.Close(); err != nil {
		a.log.Warn("Cannot close session storage: %v", err)
	}
	if err := a.manager.Close(); err != nil {
		a.log.Warn("Couldn't close database connection: %v", err)
	}
	a.log.Info("API shutdown gracefully")
}
