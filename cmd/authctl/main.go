// Command authctl is a small client for an agil-auth server.
//
// Usage:
//
//	authctl register -username U -email E -password P -phone N -full-name F
//	authctl login -email E -password P
//	authctl session -token T
//	authctl version
//	authctl health
//
// The server address is taken from ADAPTER_ADDRESS (default
// http://localhost:8000) and the route prefix from SERVER_BASE_PATH.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/MKhiriev/agil-auth/internal/adapter"
	"github.com/MKhiriev/agil-auth/internal/config"
	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	log := logger.NewConsoleLogger("authctl")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping default")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err = run(ctx, os.Args[1:], serverAdapter, build, os.Stdout); err != nil {
		log.Error().Err(err).Msg("authctl")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, server adapter.ServerAdapter, build models.AppBuildInfo, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected register, login, session, version or health", errUnknownCommand)
	}

	command, args := args[0], args[1:]
	switch command {
	case "register":
		return register(ctx, args, server, out)
	case "login":
		return login(ctx, args, server, out)
	case "session":
		return session(ctx, args, server, out)
	case "version":
		return version(ctx, server, build, out)
	case "health":
		if err := server.Health(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "ok")
		return err
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}
}

func register(ctx context.Context, args []string, server adapter.ServerAdapter, out io.Writer) error {
	var req models.RegisterRequest

	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&req.Username, "username", "", "Username")
	fs.StringVar(&req.Email, "email", "", "Email")
	fs.StringVar(&req.Password, "password", "", "Password")
	fs.StringVar(&req.Phone, "phone", "", "Phone number")
	fs.StringVar(&req.FullName, "full-name", "", "Full name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	userID, err := server.Register(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(out, models.RegisterResponse{UserID: userID})
}

func login(ctx context.Context, args []string, server adapter.ServerAdapter, out io.Writer) error {
	var req models.LoginRequest

	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&req.Email, "email", "", "Email")
	fs.StringVar(&req.Password, "password", "", "Password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := server.Login(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(out, resp)
}

func session(ctx context.Context, args []string, server adapter.ServerAdapter, out io.Writer) error {
	var token string

	fs := flag.NewFlagSet("session", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&token, "token", os.Getenv("AGIL_TOKEN"), "Session token (default $AGIL_TOKEN)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	server.SetToken(token)
	s, err := server.Session(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, s)
}

func version(ctx context.Context, server adapter.ServerAdapter, build models.AppBuildInfo, out io.Writer) error {
	if _, err := fmt.Fprint(out, build); err != nil {
		return err
	}

	serverVersion, err := server.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Server version: %s\n", serverVersion)
	return err
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
