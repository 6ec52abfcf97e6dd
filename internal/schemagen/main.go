// Command schemagen regenerates the embedded JSON schema from the
// configuration types. Run via go:generate in pkg/config.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/finchley/lintgate/pkg/config"
	"github.com/finchley/lintgate/pkg/schema"
)

var outFile = flag.String("o", "lintgate.schema.json", "Output file for the generated schema")

func main() {
	flag.Parse()

	gen := schema.NewGenerator(config.New(),
		"github.com/finchley/lintgate/pkg/config", "./",
	)

	jsData, err := gen.Generate()
	if err != nil {
		log.Fatalf("generate JSON schema: %v", err)
	}

	err = os.WriteFile(*outFile, jsData, 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
