// Command catalog-seed validates the pricing catalog YAML and writes it into
// the DynamoDB catalog table.
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
