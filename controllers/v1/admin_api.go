package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"job-intake-backend/controllers"
	"job-intake-backend/lib/application"
	apimodels "job-intake-backend/models/api"
	applicationapimodels "job-intake-backend/models/api/application"
)

type adminApplicationApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApplicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export", controller.exportXls)
	})
}

// @Summary Список анкет
// @Tags Админка
// @Description Постраничный список принятых анкет
// @Param   Authorization		header		string	true	"Admin api key"
// @Param	body body	 applicationapimodels.ApplicationListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/application/list [post]
func (c *adminApplicationApiController) list(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := application.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка анкет")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Выгрузка анкет в xlsx
// @Tags Админка
// @Description Выгрузка анкет в xlsx, опционально по одной должности
// @Param   Authorization		header		string	true	"Admin api key"
// @Param   position    		query   string  false        "Должность"
// @Success 200 {file} file
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/application/export [post]
func (c *adminApplicationApiController) exportXls(ctx *fiber.Ctx) error {
	buf, err := application.Instance.ExportToXls(ctx.Query("position"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки анкет в xlsx")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="applications.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
