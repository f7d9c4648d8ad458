package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd agrupa los subcomandos del servicio.
var rootCmd = &cobra.Command{
	Use:   "veterinaria",
	Short: "API de la clínica veterinaria",
	Long: `Backend REST de la clínica veterinaria.

Subcomandos:
  serve       - Levanta el servidor HTTP
  migrate     - Aplica el esquema en Postgres
  healthcheck - Consulta /health del servidor local`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(healthcheckCmd)
}

// @title Veterinaria API
// @version 1.0
// @description Backend de gestión de la clínica veterinaria: clientes, mascotas, empleados, servicios y citas.
// @BasePath /
func main() {
	// Sin subcomando => serve.
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"serve"})
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
