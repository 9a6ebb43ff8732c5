package http

import (
	"fmt"
	"log"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.elastic.co/apm"
)

func SetupHttpEngine() *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(apmTransaction())

	return app
}

// apmTransaction opens one apm transaction per request and threads it through
// the user context so outbound client spans attach to it.
func apmTransaction() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tx := apm.DefaultTracer.StartTransaction(ctx.Method()+" "+ctx.Path(), "request")
		defer tx.End()

		ctx.SetUserContext(apm.ContextWithTransaction(ctx.UserContext(), tx))

		err := ctx.Next()

		statusCode := ctx.Response().StatusCode()
		tx.Context.SetHTTPStatusCode(statusCode)
		tx.Result = "HTTP " + strconv.Itoa(statusCode)

		if err != nil {
			e := apm.DefaultTracer.NewError(err)
			e.SetTransaction(tx)
			e.Send()
		}

		return err
	}
}

func StartHttpServer(app *fiber.App, port string) {
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("failed to start http server: %v", err)
	}
}
