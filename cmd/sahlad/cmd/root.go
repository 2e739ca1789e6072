package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sahla-platform/sahla/pkg/config"
	"github.com/sahla-platform/sahla/pkg/fstore"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sdb"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sahlad",
	Short: "Run the sahlad API server",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())
		e.Use(middleware.CORS())

		db := sdb.MustConnectToDB()
		c := config.MustLoadFromDotenv()

		jwtSecret := c.MustGetKey("SAHLA_JWT_SECRET")
		mediaDir := c.GetKeyWithDefault("SAHLA_MEDIA_DIR", "/var/lib/sahla/media")
		mediaURL := c.GetKeyWithDefault("SAHLA_MEDIA_URL", "/media")
		log.Infof("Media dir: %s", mediaDir)

		stors := stor.NewGormStors(db)

		setupRoutes(e, RouteOpts{
			stors:              stors,
			jwtSecret:          jwtSecret,
			fileStore:          fstore.NewLocalStore(mediaDir, mediaURL),
			accountService:     service.NewAccountService(stors),
			negotiationService: service.NewNegotiationService(stors),
			commentService:     service.NewCommentService(stors),
			projectService:     service.NewProjectService(stors),
			phaseService:       service.NewPhaseService(stors),
		})

		e.Static(mediaURL, mediaDir)

		if err := e.Start(":" + c.GetKeyWithDefault("SAHLAD_PORT", "1401")); err != nil {
			log.Fatalf("Unable to start server: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
