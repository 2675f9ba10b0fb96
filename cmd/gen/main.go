// Command gen writes the typed gorm query package for the storefront models.
package main

import (
	"flag"

	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory for generated queries")
	flag.Parse()

	models := append(model.All(), &model.ProductCategoryModel{})

	generator := gen.NewGenerator(gen.Config{
		OutPath: *outPath,
	})

	generator.ApplyBasic(models...)

	generator.Execute()
}
