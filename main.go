package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"bookit/config"
	_ "bookit/docs"
	"bookit/routes"
	"bookit/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Failed to load .env file: %v", err)
	}

	rootCmd := &cobra.Command{
		Use:   "bookit",
		Short: "Hotel room booking API",
	}
	rootCmd.AddCommand(serveCmd(), migrateCmd(), tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Load()

			db, err := config.ConnectDB(settings)
			if err != nil {
				return err
			}
			if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
				if err := config.Migrate(db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			redisCli, err := config.ConnectRedis(settings)
			if err != nil {
				// Không có Redis thì chạy không cache
				log.Printf("Redis unavailable, caching disabled: %v", err)
			}

			var media services.MediaHost
			if cld, err := config.ConnectCloudinary(settings); err != nil {
				log.Printf("Cloudinary unavailable, image upload disabled: %v", err)
			} else {
				media = services.NewCloudinaryMedia(cld)
			}

			router := gin.Default()

			configCors := cors.DefaultConfig()
			configCors.AddAllowHeaders("Authorization")
			configCors.AllowCredentials = true
			configCors.AllowAllOrigins = false
			configCors.AllowOriginFunc = func(origin string) bool {
				return true
			}
			router.Use(cors.New(configCors))

			routes.SetupRoutes(router, routes.Services{
				Rooms:     services.NewRoomService(db, redisCli, settings.CacheTTL, media, settings.CloudinaryFolder),
				Reviews:   services.NewReviewService(db, redisCli, settings.CacheTTL),
				Bookings:  services.NewBookingService(db, redisCli, settings.CacheTTL),
				JWTSecret: settings.JWTSecret,
			})

			router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

			return router.Run(":" + settings.Port)
		},
	}
	cmd.Flags().Bool("migrate", false, "Run auto migration before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.ConnectDB(config.Load())
			if err != nil {
				return err
			}
			if err := config.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Println("Schema is up to date.")
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetUint("user-id")
			name, _ := cmd.Flags().GetString("name")
			role, _ := cmd.Flags().GetInt("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			token, err := services.GenerateToken(services.Actor{ID: id, Name: name, Role: role}, config.Load().JWTSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().Uint("user-id", 1, "User ID")
	cmd.Flags().String("name", "Dev User", "Display name")
	cmd.Flags().Int("role", 0, "0: user, 1: super admin, 2: admin")
	cmd.Flags().Duration("ttl", 72*time.Hour, "Token lifetime")
	return cmd
}
