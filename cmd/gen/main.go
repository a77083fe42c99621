package main

import (
	"biaresh/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.SlotModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/database/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
