package main

import (
	"workdesk/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.EmployeeModel{},
		model.GeofenceModel{},
		model.EmployeeGeofenceAssignmentModel{},
		model.GeofenceEventModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
