package main

import (
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cppla/aiblog/config"
	"github.com/cppla/aiblog/models"
	"github.com/cppla/aiblog/utils"
)

func main() {
	accounts := flag.Int("accounts", 0, "number of fake accounts to generate")
	posts := flag.Int("posts", 0, "number of fake posts to generate")
	comments := flag.Int("comments", 0, "number of fake comments to generate")
	tokenFor := flag.Uint("token-for", 0, "print a 24h session token for this account id")
	flag.Parse()

	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	if cfg.BcryptCost != 0 {
		utils.PasswordCost = cfg.BcryptCost
	}
	models.AvatarDefaults = models.AvatarOptions{
		Size:    cfg.AvatarSize,
		Default: cfg.AvatarDefault,
		Rating:  cfg.AvatarRating,
	}

	db := config.InitDatabase(&models.Account{}, &models.Post{}, &models.Comment{})
	seeder := models.NewSeeder(db, models.WithSeedAuthor(cfg.SeedAuthorID), models.WithLogger(utils.Logger))

	if *accounts > 0 {
		if _, err := seeder.Accounts(*accounts); err != nil {
			utils.Sugar.Fatalf("generate accounts: %v", err)
		}
	}
	if *posts > 0 {
		if _, err := seeder.Posts(*posts); err != nil {
			utils.Sugar.Fatalf("generate posts: %v", err)
		}
	}
	if *comments > 0 {
		if _, err := seeder.Comments(*comments); err != nil {
			utils.Sugar.Fatalf("generate comments: %v", err)
		}
	}

	if *tokenFor > 0 {
		account, err := models.LoadAccount(db, *tokenFor)
		if err != nil {
			utils.Sugar.Fatalf("load account: %v", err)
		}
		token, err := utils.GenerateToken(cfg.JWTSecret, account.ID, account.Username, 24*time.Hour)
		if err != nil {
			utils.Logger.Fatal("issue token", zap.Uint("account_id", account.ID), zap.Error(err))
		}
		fmt.Println(token)
	}
}
