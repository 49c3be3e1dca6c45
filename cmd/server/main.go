package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/global"
	"github.com/enzel-org/BestellDesk/internal/logger"
)

// initLogger sets up the logging system before anything else runs. The logger
// reads its configuration from environment variables.
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized")
}

// main_thread runs the Fiber server on the main goroutine.
func main_thread(app *fiber.App) {
	log := logger.GetAppLogger()

	address := global.ServerConfig.Address
	log.WithField("address", address).Info("Starting server")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()
	InitGlobal()

	app := InitFiberApp()
	main_thread(app)
}
