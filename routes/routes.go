package routes

import (
	"os"
	"strings"

	"gymnet-backend/config"
	"gymnet-backend/controllers"
	"gymnet-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public reads
	r.GET("/weekly-schedule", controllers.GetWeeklySchedule)
	r.GET("/gyms", controllers.GetGyms)
	r.GET("/gyms/:slug", controllers.GetGym)
	r.GET("/gyms/:slug/members", controllers.GetGymMembers)
	r.GET("/posters", controllers.GetPosters)
	r.GET("/schedules/:id", controllers.GetSchedule)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
			profile.GET("/trainees", controllers.ListTrainees)
			profile.POST("/trainees/:id", controllers.AddTrainee)
			profile.DELETE("/trainees/:id", controllers.RemoveTrainee)
			profile.GET("/trainers", controllers.ListTrainers)
		}

		// Membership routes
		api.POST("/gyms/:slug/join", controllers.JoinGym)
		api.POST("/gyms/:slug/leave", controllers.LeaveGym)

		// Staff-only writes
		staff := api.Group("")
		staff.Use(controllers.StaffRequired())
		{
			staff.POST("/gyms", controllers.CreateGym)
			staff.PUT("/gyms/:slug", controllers.UpdateGym)
			staff.DELETE("/gyms/:slug", controllers.DeleteGym)
			staff.POST("/gyms/:slug/pictures", controllers.AddGymPicture)

			staff.POST("/schedules", controllers.CreateSchedule)
			staff.PUT("/schedules/:id", controllers.UpdateSchedule)
			staff.PATCH("/schedules/:id", controllers.PatchSchedule)
			staff.DELETE("/schedules/:id", controllers.DeleteSchedule)

			staff.POST("/posters", controllers.CreatePoster)
		}
	}

	return r
}
