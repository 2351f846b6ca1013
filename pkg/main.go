package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	pkg "github.com/bildev/tastebook/pkg/internal"
	"github.com/bildev/tastebook/pkg/internal/cache"
	"github.com/bildev/tastebook/pkg/internal/database"
	"github.com/bildev/tastebook/pkg/internal/http"
	"github.com/bildev/tastebook/pkg/internal/services"
	"github.com/bildev/tastebook/pkg/internal/storage"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.GreenString(" _____         _       _                 _\n|_   _|_ _ ___| |_ ___| |__   ___   ___ | | __\n  | |/ _` / __| __/ _ \\ '_ \\ / _ \\ / _ \\| |/ /\n  | | (_| \\__ \\ ||  __/ |_) | (_) | (_) |   <\n  |_|\\__,_|___/\\__\\___|_.__/ \\___/ \\___/|_|\\_\\"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiGreen).Add(color.Bold).Sprintf("Tastebook"), pkg.AppVersion)
	fmt.Printf("The recipe publishing platform\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Local cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up local cache.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Media storage
	if driver, err := storage.NewDiskDriver(viper.GetString("storage.media_path")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when preparing media storage.")
	} else {
		services.MediaStorage = driver
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.AddFunc("@every 60m", services.ResyncAllSnapshots)
	quartz.AddFunc("@every 5m", services.FlushArticleViews)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
	services.FlushArticleViews()
}
