package handler

import "github.com/gin-gonic/gin"

// Handlers groups every HTTP handler mounted by RegisterRoutes.
type Handlers struct {
	Auth       *AuthHandler
	Attendance *AttendanceHandler
	Grades     *GradeHandler
	Messages   *MessageHandler
	Health     *HealthHandler
}

// RegisterRoutes mounts the public routes on r.
func RegisterRoutes(r gin.IRouter, h Handlers) {
	r.GET("/", Index)

	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	r.GET("/metrics", h.Health.Metrics)

	r.POST("/registro", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	r.POST("/asistencia", h.Attendance.Mark)
	r.GET("/asistencia/:estudiante_id", h.Attendance.List)

	grades := r.Group("/calificaciones")
	grades.POST("", h.Grades.Add)
	grades.GET("/:estudiante_id", h.Grades.List)
	grades.GET("/:estudiante_id/export", h.Grades.Export)

	r.POST("/mensajes", h.Messages.Send)
	r.GET("/mensajes/:usuario_id", h.Messages.List)
}
