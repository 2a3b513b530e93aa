package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/velmara/heritage-panel/config"
	"github.com/velmara/heritage-panel/database"
	"github.com/velmara/heritage-panel/logger"
	"github.com/velmara/heritage-panel/web"
	"github.com/velmara/heritage-panel/web/service"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			_ = server.Stop()
			_ = database.CloseDB()
			logger.CloseLogger()
			return
		}
	}
}

func resetAdminPassword(email string, password string) {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}
	adminService := service.AdminService{}
	if err := adminService.ResetPassword(email, password); err != nil {
		fmt.Println("reset password failed:", err)
		return
	}
	fmt.Println("password updated for", email)
}

func showSettings() {
	fmt.Println("listen:  ", config.GetListen())
	fmt.Println("port:    ", config.GetPort())
	fmt.Println("db:      ", config.GetDBPath())
	fmt.Println("media:   ", config.GetMediaFolder())
	fmt.Println("logs:    ", config.GetLogFolder())
	fmt.Println("token ttl:", config.GetTokenTTL())
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   config.GetName(),
		Short: "Back-office server for the heritage site",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator account management",
	}

	var resetEmail, resetPassword string
	resetCmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset an administrator password",
		Run: func(cmd *cobra.Command, args []string) {
			if resetEmail == "" || resetPassword == "" {
				fmt.Println("both --email and --password are required")
				os.Exit(1)
			}
			resetAdminPassword(resetEmail, resetPassword)
		},
	}
	resetCmd.Flags().StringVar(&resetEmail, "email", "", "administrator email")
	resetCmd.Flags().StringVar(&resetPassword, "password", "", "new password")
	adminCmd.AddCommand(resetCmd)

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect configuration",
	}
	settingsCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective settings",
		Run: func(cmd *cobra.Command, args []string) {
			showSettings()
		},
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	rootCmd.AddCommand(runCmd, adminCmd, settingsCmd, versionCmd)
	return rootCmd
}

func main() {
	config.LoadEnvFile()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
