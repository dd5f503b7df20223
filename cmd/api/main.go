package main

import (
	"salle_attente/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Salle d'Attente API
// @version         1.0
// @description     Clinic waiting-room queue and per-day billing ledger, memory-resident.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
