package publicapi

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"job-intake-backend/controllers"
	"job-intake-backend/db"
	"job-intake-backend/lib/application"
	apimodels "job-intake-backend/models/api"
	applicationapimodels "job-intake-backend/models/api/application"
	s3client "job-intake-backend/s3"
)

type publicApplicationApiController struct {
	controllers.BaseAPIController
}

func InitPublicApplicationApiRouters(app *fiber.App) {
	controller := publicApplicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Post("", controller.submit)
		router.Get("health", controller.health)
	})
}

// @Summary Отправка анкеты соискателя
// @Tags Анкета соискателя
// @Description Принимает анкету целиком: поля, мультивыбор и вложения в base64
// @Param	body body	 applicationapimodels.ApplicationForm	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.SubmitResult}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/application [post]
func (c *publicApplicationApiController) submit(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationForm
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := application.Instance.Submit(ctx.UserContext(), payload)
	if err != nil {
		logger := c.GetLogger(ctx).WithField("position", payload.Position)
		return c.SendError(ctx, logger, err, "Ошибка приёма анкеты")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Проверка доступности БД и хранилища
// @Tags Анкета соискателя
// @Description Диагностика: пинг БД и проверка соединения с хранилищем файлов
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/application/health [get]
func (c *publicApplicationApiController) health(ctx *fiber.Ctx) error {
	report := fiber.Map{
		"database": "ok",
		"storage":  "ok",
	}
	failed := false
	if err := db.PingDB(); err != nil {
		report["database"] = err.Error()
		failed = true
	}
	if s3client.Client == nil {
		report["storage"] = "клиент хранилища не инициализирован"
		failed = true
	} else if _, err := s3client.Client.ListBuckets(context.Background()); err != nil {
		report["storage"] = err.Error()
		failed = true
	}
	if failed {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.Response{Status: "fail", Data: report})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(report))
}
