package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"warelay/internal/config"
	"warelay/internal/http-server/handlers/errors"
	"warelay/internal/http-server/handlers/send"
	"warelay/internal/http-server/handlers/webhook"
	"warelay/internal/http-server/middleware/authenticate"
	"warelay/internal/http-server/middleware/timeout"
	"warelay/internal/lib/sl"
	"warelay/internal/ws"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	webhook.Core
	send.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, feed *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(60))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/api/webhook", func(r chi.Router) {
		r.Get("/", webhook.Verify(log, conf.WhatsApp.VerifyToken))
		r.Post("/", webhook.Receive(log, conf.WhatsApp.AppSecret, handler, feed))
	})

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(authenticate.New(log, conf.Listen.ApiKey))
		v1.Route("/send", func(r chi.Router) {
			r.Post("/text", send.Text(log, handler))
			r.Post("/buttons", send.Buttons(log, handler))
			r.Post("/document", send.Document(log, handler))
		})
	})

	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(feed, conf.Listen.ApiKey, log, w, r)
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
