package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/itchan-dev/yatube/backend/internal/service"
	"github.com/itchan-dev/yatube/backend/internal/storage/pg"
	"github.com/itchan-dev/yatube/shared/config"
	"github.com/itchan-dev/yatube/shared/domain"
	"github.com/itchan-dev/yatube/shared/jwt"
	sharedpg "github.com/itchan-dev/yatube/shared/storage/pg"
)

func main() {
	var (
		configFolder string
		username     string
		password     string
	)
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&username, "username", "", "admin username")
	flag.StringVar(&password, "password", "", "admin password (at least 8 characters)")
	flag.Parse()

	if username == "" || len(password) < 8 {
		log.Fatal("usage: create-admin -username <name> -password <at least 8 characters>")
	}

	cfg := config.MustLoad(configFolder)
	storage, err := pg.New(cfg, sharedpg.LightweightConnectionConfig())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer storage.Cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	auth := service.NewAuth(storage, jwt.New(cfg.JwtKey(), cfg.JwtTTL()))
	id, err := auth.Register(ctx, domain.Credentials{Username: username, Password: password}, true)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin %q created with id %d\n", username, id)
}
