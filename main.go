// Package main library management API: book catalog CRUD, borrow
// transactions and the per-book borrow summary.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer"
	bookctrl "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer/controller/book"
	borrowctrl "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer/controller/borrow"
	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/app/echoServer/validation"
	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/config"
	bookrepo "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/repository/book"
	borrowrepo "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/repository/borrow"
	booksvc "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/service/book"
	borrowsvc "github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/service/borrow"
	"github.com/zhzahid1911509/ph-l2b5-a3-library-management-system/util/database"
)

func main() {

	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	// DB: mongo
	db, err := database.New(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close(ctx)

	// repos
	br := bookrepo.New(db.Database)
	rr := borrowrepo.New(db.Database)
	if err := br.EnsureIndexes(ctx); err != nil {
		log.Error("index creation failed", "err", err)
		os.Exit(1)
	}

	// services
	bs := booksvc.New(br, log)
	rs := borrowsvc.New(br, rr, log)

	// controllers
	v := validator.New()
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	borrowC := &borrowctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()
	e.HTTPErrorHandler = echoServer.ErrorHandler(log)

	echoServer.Register(e, echoServer.C{
		Book:   bookC,
		Borrow: borrowC,
	})

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
