package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/hospitek/medequip-backend/internal/api/handlers/registry"
	"github.com/hospitek/medequip-backend/internal/api/handlers/reminders"
)

func New(registryHandler *registry.Handler, remindersHandler *reminders.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	clients := api.Group("/clients")
	clients.POST("/", registryHandler.CreateClient)
	clients.GET("/", registryHandler.ListClients)
	clients.GET("/:id", registryHandler.GetClient)
	clients.PUT("/:id", registryHandler.UpdateClient)
	clients.DELETE("/:id", registryHandler.DeleteClient)

	equipment := api.Group("/equipment")
	equipment.POST("/", registryHandler.CreateEquipment)
	equipment.GET("/", registryHandler.ListEquipment)
	equipment.GET("/:id", registryHandler.GetEquipment)
	equipment.PUT("/:id", registryHandler.UpdateEquipment)
	equipment.DELETE("/:id", registryHandler.DeleteEquipment)
	equipment.GET("/:id/schedule", registryHandler.GetSchedule)
	equipment.DELETE("/:id/milestones/:months", remindersHandler.ResetMilestone)

	staff := api.Group("/staff")
	staff.POST("/", registryHandler.CreateStaffUser)
	staff.GET("/", registryHandler.ListStaffUsers)
	staff.PUT("/:id", registryHandler.UpdateStaffUser)
	staff.DELETE("/:id", registryHandler.DeleteStaffUser)

	runs := api.Group("/reminders")
	runs.POST("/run", remindersHandler.TriggerRun)
	runs.GET("/runs", remindersHandler.ListRuns)

	return e
}
