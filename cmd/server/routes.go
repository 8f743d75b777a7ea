package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JoelCaquene/saudi-aramco/internal/interfaces/http/handlers"
	"github.com/JoelCaquene/saudi-aramco/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	levelHandler      *handlers.LevelHandler
	taskHandler       *handlers.TaskHandler
	depositHandler    *handlers.DepositHandler
	withdrawalHandler *handlers.WithdrawalHandler
	rouletteHandler   *handlers.RouletteHandler
	teamHandler       *handlers.TeamHandler
	profileHandler    *handlers.ProfileHandler
	platformHandler   *handlers.PlatformHandler
	authMiddleware    gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key, X-Request-ID")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "saudi-aramco-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public; me and password require a token)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Platform routes (public)
		v1.GET("/platform", d.platformHandler.Info)

		// Level routes (catalog public, purchase protected)
		levels := v1.Group("/levels")
		{
			levels.GET("", d.levelHandler.List)
			levels.GET("/owned", d.authMiddleware, d.levelHandler.Owned)
			levels.POST("/:id/purchase", d.authMiddleware, middleware.IdempotencyMiddleware(), d.levelHandler.Purchase)
		}

		// Task routes (protected)
		tasks := v1.Group("/tasks")
		tasks.Use(d.authMiddleware)
		{
			tasks.GET("/status", d.taskHandler.Status)
			tasks.POST("/claim", middleware.IdempotencyMiddleware(), d.taskHandler.Claim)
		}

		// Deposit routes (protected)
		deposits := v1.Group("/deposits")
		deposits.Use(d.authMiddleware)
		{
			deposits.POST("", middleware.IdempotencyMiddleware(), d.depositHandler.Create)
			deposits.GET("", d.depositHandler.ListMine)
		}

		// Withdrawal routes (protected)
		withdrawals := v1.Group("/withdrawals")
		withdrawals.Use(d.authMiddleware)
		{
			withdrawals.POST("", middleware.IdempotencyMiddleware(), d.withdrawalHandler.Request)
			withdrawals.GET("", d.withdrawalHandler.ListMine)
		}

		// Roulette routes (protected)
		roulette := v1.Group("/roulette")
		roulette.Use(d.authMiddleware)
		{
			roulette.GET("", d.rouletteHandler.Status)
			roulette.POST("/spin", middleware.IdempotencyMiddleware(), d.rouletteHandler.Spin)
		}

		// Team and income routes (protected)
		v1.GET("/team", d.authMiddleware, d.teamHandler.Summary)
		v1.GET("/income", d.authMiddleware, d.teamHandler.Income)

		// Profile routes (protected)
		profile := v1.Group("/profile")
		profile.Use(d.authMiddleware)
		{
			profile.GET("", d.profileHandler.Get)
			profile.PUT("/bank-details", d.profileHandler.UpsertBankDetails)
		}

		// Staff routes
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireStaff())
		{
			admin.GET("/deposits/pending", d.depositHandler.ListPending)
			admin.POST("/deposits/:id/approve", d.depositHandler.Approve)

			admin.PUT("/withdrawals/:id/status", d.withdrawalHandler.UpdateStatus)

			admin.POST("/levels", d.levelHandler.Create)
			admin.PUT("/levels/:id", d.levelHandler.Update)

			admin.POST("/users/:id/spins", d.rouletteHandler.GrantSpins)

			admin.PUT("/platform", d.platformHandler.UpdateSettings)
			admin.PUT("/platform/roulette", d.platformHandler.UpdateRoulette)
			admin.POST("/platform/bank-accounts", d.platformHandler.AddBankAccount)
		}
	}
}
