package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"job-intake-backend/config"
	apiv1 "job-intake-backend/controllers/v1"
	publicapi "job-intake-backend/controllers/v1/public"
	"job-intake-backend/fiberlog"
	"job-intake-backend/initializers"
	"job-intake-backend/middleware"
	apimodels "job-intake-backend/models/api"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	// любая необработанная ошибка или паника превращается
	// в корректный конверт ответа, а не в голый 500
	errorHandler := func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		return c.Status(code).JSON(apimodels.NewError(err.Error()))
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    config.Conf.App.BodyLimitMb * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	app.Use(fiberRecover.New())
	app.Use(middleware.WithBodyLimit(1 * 1024 * 1024))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New(fiber.Config{
		BodyLimit:    config.Conf.App.BodyLimitMb * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//публичная часть - анкета соискателя
	public := fiber.New(fiber.Config{
		BodyLimit:    config.Conf.App.BodyLimitMb * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	apiV1.Mount("/public", public)
	public.Use(fiberRecover.New())
	publicapi.InitPublicApplicationApiRouters(public)

	//админка - список и выгрузка анкет
	admin := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	apiV1.Mount("/admin", admin)
	admin.Use(middleware.AdminKeyRequired())
	apiv1.InitAdminApiRouters(admin)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
