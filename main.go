package main

import (
	"os"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/msatech/skribbl/config"
	"github.com/msatech/skribbl/game"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(ctx *gin.Context) { ctx.String(200, "healthy") })

	if slices.Contains(allowedOrigins, "*") {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{
				"Content-Type",
				"Upgrade",
				"Connection",
				"Sec-WebSocket-Key",
				"Sec-WebSocket-Version",
				"Sec-WebSocket-Extensions",
				"Sec-WebSocket-Protocol",
			},
		}))
		return r
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel).Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = logger.Level(zerolog.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	timings := game.Timings{
		WordChoice: cfg.WordChoiceTimeout,
		RoundEnd:   cfg.RoundEndDelay,
		Grace:      cfg.DisconnectGrace,
	}

	bank := game.NewWordBank()
	codeGen := game.NewCodeGenerator()
	tickerGen := game.NewPeriodicTickerChannelCreator()

	lobby := game.NewLobby(codeGen, tickerGen, logger)
	lobbyStarted := make(chan struct{})
	go lobby.LobbyActor(lobbyStarted)
	<-lobbyStarted

	r := CreateServer(cfg.AllowedOrigins)
	gameHandler := game.NewHandler(lobby, bank, timings, cfg.AllowedOrigins, logger)
	gameHandler.Register(r)

	logger.Info().Str("addr", cfg.Addr).Int("words", bank.Size()).Msg("server starting")
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
