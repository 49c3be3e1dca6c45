package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/enzel-org/BestellDesk/config"
	"github.com/enzel-org/BestellDesk/internal/api/handler"
	"github.com/enzel-org/BestellDesk/internal/api/router"
	"github.com/enzel-org/BestellDesk/internal/api/services"
	"github.com/enzel-org/BestellDesk/internal/database"
	"github.com/enzel-org/BestellDesk/internal/global"
	"github.com/enzel-org/BestellDesk/internal/models"
)

// appHandlers and authService are built during InitGlobal and consumed by
// InitFiberApp when registering routes.
var (
	appHandlers *router.Handlers
	authService *services.AuthService
)

// InitGlobal initialises the process-wide state in dependency order.
func InitGlobal() {
	initValidatorRules()
	initConfig()
	initDatabaseMongoDB()
	initServices()
}

func initValidatorRules() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

func initDatabaseMongoDB() {
	ctx := context.Background()

	client, err := database.Connect(ctx, global.ServerConfig.MongoDB_ConnectionURI)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	global.MongoSession = client
	logrus.Info("Connected to MongoDB")

	db := client.Database(global.ServerConfig.MongoDB_DBName)
	if err := database.EnsureCollections(ctx, db, models.AllCollections()); err != nil {
		logrus.Fatalf("Failed to ensure collections: %v", err)
	}

	database.CreateIndexes(ctx, db.Collection(models.CollBestellungen), models.Bestellung{})
	database.CreateIndexes(ctx, db.Collection(models.CollLieferanten), models.Lieferant{})
	database.CreateIndexes(ctx, db.Collection(models.CollSpeisen), models.Speise{})
	database.CreateIndexes(ctx, db.Collection(models.CollKategorien), models.Kategorie{})
	database.CreateIndexes(ctx, db.Collection(models.CollEinstellungen), models.Einstellung{})
	database.CreateIndexes(ctx, db.Collection(models.CollAdminBenutzer), models.AdminBenutzer{})
	logrus.Info("Ensured collections and indexes")
}

// initServices builds the store, service and handler layers and seeds the
// default admin account.
func initServices() {
	cfg := global.ServerConfig
	db := global.MongoSession.Database(cfg.MongoDB_DBName)

	bestellungenStore := services.NewMongoService[models.Bestellung](db.Collection(models.CollBestellungen))
	lieferantenStore := services.NewMongoService[models.Lieferant](db.Collection(models.CollLieferanten))
	speisenStore := services.NewMongoService[models.Speise](db.Collection(models.CollSpeisen))
	kategorienStore := services.NewMongoService[models.Kategorie](db.Collection(models.CollKategorien))
	einstellungenStore := services.NewMongoService[models.Einstellung](db.Collection(models.CollEinstellungen))
	adminStore := services.NewMongoService[models.AdminBenutzer](db.Collection(models.CollAdminBenutzer))

	bestellungService := services.NewBestellungService(bestellungenStore, lieferantenStore)
	lieferantService := services.NewLieferantService(lieferantenStore, einstellungenStore)
	speiseService := services.NewSpeiseService(speisenStore, lieferantenStore)
	kategorieService := services.NewKategorieService(kategorienStore, lieferantenStore)
	zeitfensterService := services.NewZeitfensterService(einstellungenStore)
	exportService := services.NewExportService(bestellungenStore, lieferantenStore, speisenStore, kategorienStore, einstellungenStore)

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	authService = services.NewAuthService(adminStore, cfg.JwtSecret, sessionTTL)

	if err := authService.EnsureDefaultAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logrus.Fatalf("Failed to seed default admin account: %v", err)
	}

	appHandlers = &router.Handlers{
		System:      handler.NewSystemHandler(),
		Public:      handler.NewPublicHandler(bestellungService, lieferantService, speiseService, kategorieService, zeitfensterService),
		Auth:        handler.NewAuthHandler(authService),
		Bestellung:  handler.NewBestellungHandler(bestellungService),
		Lieferant:   handler.NewLieferantHandler(lieferantService, speiseService, kategorieService),
		Zeitfenster: handler.NewZeitfensterHandler(zeitfensterService),
		Export:      handler.NewExportHandler(exportService),
	}
	logrus.Info("Initialized services and handlers")
}
