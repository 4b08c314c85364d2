package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-tailor/internal/secrets"
	"github.com/spigell/cv-tailor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the keyword and match API over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", "", "address to listen on (default is server.listen)")
	serveCmd.Flags().String("token-file", "", "file with the bearer token required by /api routes")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("server.token-file", serveCmd.Flags().Lookup("token-file"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, config, scorer := setup()

	token, err := secrets.LoadOptional(secrets.Source{
		Name:  "api token",
		Value: config.Server.Token,
		File:  config.Server.TokenFile,
	})
	if err != nil {
		logger.Fatal(
			"loading the api token",
			zap.Error(err),
			zap.String("hint", "set CV_TAILOR_SERVER_TOKEN_FILE or the 'server.token-file' key in the configuration file"),
		)
	}

	srv := server.New(server.Config{
		Listen:         config.Server.Listen,
		Token:          token,
		MaxInputLength: config.MaxInputLength,
		PoolLimit:      config.Keywords.PoolLimit,
		RateLimit: server.RateLimit{
			Requests: config.Server.RateLimit.Requests,
			Window:   config.Server.RateLimit.Window,
		},
	}, scorer, logger)

	logger.Info("starting the cv-tailor api", zap.String("version", version))

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("serving", zap.Error(err))
	}
}
