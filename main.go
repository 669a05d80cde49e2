package main

import (
	"log"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"github.com/bitsea/gamebay/biz/dal/model"
	"github.com/bitsea/gamebay/biz/handler"
	"github.com/bitsea/gamebay/biz/middleware"
	"github.com/bitsea/gamebay/biz/router"
	"github.com/bitsea/gamebay/biz/service"
	"github.com/bitsea/gamebay/pkg/config"
	"github.com/bitsea/gamebay/pkg/database"
	"github.com/bitsea/gamebay/pkg/storage"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.Game{},
		&model.Asset{},
		&model.Screenshot{},
		&model.Profile{},
	); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	hlog.Infof("storage backend: %s", store.Type())

	svc := service.NewService(db, store)

	h := server.Default(server.WithHostPorts(cfg.Server.Address))
	h.Use(middleware.Recovery())
	h.Use(middleware.Logging())
	h.Use(middleware.CORS(&cfg.CORS))

	router.Register(h,
		handler.NewGameHandler(svc, cfg.Upload),
		handler.NewSearchHandler(svc),
		handler.NewProfileHandler(svc, cfg.Upload),
	)

	hlog.Infof("gamebay listening on %s", cfg.Server.Address)
	h.Spin()
}
