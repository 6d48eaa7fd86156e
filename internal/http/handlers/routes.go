package handlers

import (
	"github.com/gofiber/fiber/v2"

	"travelnest/internal/api"
)

// Register binds the shared API surface to the router. Methods and paths come
// straight from the api package so server and client cannot drift.
func Register(app *fiber.App, d *Deps) {
	app.Add(api.Packages.List.Method, api.Packages.List.Path, d.PackageHandler.List)
	app.Add(api.Packages.Get.Method, api.Packages.Get.Path, d.PackageHandler.Get)
	app.Add(api.Packages.Create.Method, api.Packages.Create.Path, d.PackageHandler.Create)
	app.Add(api.Inquiries.Create.Method, api.Inquiries.Create.Path, d.InquiryHandler.Create)
}
