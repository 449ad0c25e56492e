package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dags-/jenkbadge/err"
	"github.com/dags-/jenkbadge/manager"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the badge server",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, e := loadConfig(configPath)
		if e != nil {
			return e
		}
		setupLogging(&c.Log)
		return serve(cmd.Context(), c)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml)")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, c *Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, e := newStore(ctx, &c.Cache)
	if e != nil {
		return e
	}

	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	m := manager.New(newRegistry(c), store, c.Cache.TTL)
	srv := &http.Server{
		Handler:           m.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	l, er := listen(c.Bind, c.Port)
	if er != nil {
		return er
	}
	log.Info().Str("addr", l.Addr().String()).Msg("starting server")

	go func() {
		if e := srv.Serve(l); e != nil && e != http.ErrServerClosed {
			err.New(e).Fatal()
		}
	}()
	go exit(os.Stdin, stop)

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdown)
}

func newStore(ctx context.Context, c *CacheConfig) (manager.Store, error) {
	switch c.Type {
	case "redis":
		s, e := manager.NewRedisStore(c.RedisAddr, c.RedisPassword, c.RedisDB)
		if e != nil {
			return nil, e
		}
		go func() {
			<-ctx.Done()
			err.Close(s)
		}()
		return s, nil
	case "none":
		c.TTL = 0
		return manager.NewMemoryStore(), nil
	default:
		s := manager.NewMemoryStore()
		if c.TTL > 0 {
			go s.PurgeEvery(ctx, c.TTL)
		}
		return s, nil
	}
}

// exit calls stop once "exit" or "stop" is read from in. Reaching the end
// of in only ends the watch; a daemon with a closed stdin keeps serving.
func exit(in io.Reader, stop func()) {
	s := bufio.NewScanner(in)
	for s.Scan() {
		switch strings.ToLower(strings.TrimSpace(s.Text())) {
		case "exit", "stop":
			log.Info().Msg("stop requested on stdin")
			stop()
			return
		}
	}
}

func listen(bind string, port int) (net.Listener, error) {
	l, e := net.Listen("tcp", net.JoinHostPort(bind, fmt.Sprint(port)))
	if e != nil {
		return nil, err.Wrap(e, "listen")
	}
	return l, nil
}
