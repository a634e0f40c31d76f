// Command sitectl administra el contenido del sitio (categorías, servicios y galería)
// a través de la API REST, con el mismo flujo de commit que el panel web.
package main

import (
	"os"

	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{Env: "development", Level: os.Getenv("LOG_LEVEL"), Out: os.Stderr})
	if err := newRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}
