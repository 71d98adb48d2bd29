package app

import (
	"net/http"

	"friendkb-go/internal/config"
	"friendkb-go/internal/db"
	attributedomain "friendkb-go/internal/domain/attribute"
	frienddomain "friendkb-go/internal/domain/friend"
	groupdomain "friendkb-go/internal/domain/group"
	relationshipdomain "friendkb-go/internal/domain/relationship"
	userdomain "friendkb-go/internal/domain/user"
	attributerepo "friendkb-go/internal/repository/postgres/attribute"
	friendrepo "friendkb-go/internal/repository/postgres/friend"
	grouprepo "friendkb-go/internal/repository/postgres/group"
	relationshiprepo "friendkb-go/internal/repository/postgres/relationship"
	userrepo "friendkb-go/internal/repository/postgres/user"
	"friendkb-go/internal/transport/httpserver"
	"friendkb-go/internal/transport/httpserver/handler"
	"friendkb-go/internal/transport/httpserver/middleware"
	"friendkb-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	friends := frienddomain.NewService(
		friendrepo.NewPostgres(dbConn),
		friendrepo.NewUserRelationshipPostgres(dbConn),
	)
	groups := groupdomain.NewService(grouprepo.NewPostgres(dbConn))
	attributes := attributedomain.NewService(attributerepo.NewPostgres(dbConn))
	relationships := relationshipdomain.NewService(relationshiprepo.NewPostgres(dbConn))

	auth := middleware.NewAuth(cfg.Auth, log)
	handlers := handler.New(log, auth, users, friends, groups, attributes, relationships)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, auth)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
