package main

import (
	"flag"
	"log/slog"

	"warelay/internal/config"
	"warelay/internal/http-server/api"
	"warelay/internal/lib/logger"
	"warelay/internal/lib/sl"
	"warelay/internal/service/whatsapp"
	"warelay/internal/ws"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting warelay", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	service := whatsapp.NewService(conf, lg)
	lg.With(
		sl.Secret("token", conf.WhatsApp.Token),
		slog.String("phone_number_id", conf.WhatsApp.PhoneNumberID),
		slog.String("api_version", conf.WhatsApp.APIVersion),
	).Info("whatsapp service initialized")

	feed := ws.NewHub(lg)
	go feed.Run()

	// *** blocking start with http server ***
	err := api.New(conf, lg, service, feed)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("api server stopped")
	}
}
