package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gocrossmin/crossmin/internal/api"
	"github.com/gocrossmin/crossmin/internal/store"
)

// serveFlags holds the crossmin-serve-only flags, bound into the same
// viper instance as the run flags; values come from the flags only, not
// from environment variables.
type serveFlags struct {
	addr     string
	mongoURI string
	mongoDB  string
}

func (c *CLI) serveCommand() *cobra.Command {
	f := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run crossmin as an HTTP service accepting POST /runs and GET /runs/{id}",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(c, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.addr, "addr", ":8080", "address to listen on")
	flags.StringVar(&f.mongoURI, "mongo-uri", "mongodb://localhost:27017", "MongoDB connection string for the run store")
	flags.StringVar(&f.mongoDB, "mongo-db", "crossmin", "MongoDB database name for the run store")
	for _, name := range []string{"addr", "mongo-uri", "mongo-db"} {
		_ = c.v.BindPFlag(name, flags.Lookup(name))
	}
	return cmd
}

func runServe(c *CLI, f *serveFlags) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := store.Connect(ctx, f.mongoURI, f.mongoDB)
	if err != nil {
		return fmt.Errorf("crossmin serve: %w", err)
	}

	srv := &api.Server{Store: st, Logger: c.Logger}
	c.Logger.Infow("crossmin serve listening", "addr", f.addr, "mongo_db", f.mongoDB)
	if err := http.ListenAndServe(f.addr, srv.Router()); err != nil {
		return fmt.Errorf("crossmin serve: %w", err)
	}
	return nil
}
