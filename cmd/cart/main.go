package main

import (
	"log"
	"os"

	"cart-service/config"
	"cart-service/internal/console"
	"cart-service/internal/service"
	"cart-service/internal/store"
	"cart-service/internal/util"
)

func main() {
	cfg := config.Load()

	if err := util.InitLogger(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting cart service")

	catalogStore := store.NewCatalogStore(cfg.Storage.CatalogFile)
	cartStore := store.NewCartStore(cfg.Storage.CartFile)

	cart, err := service.NewShoppingCart(catalogStore, cartStore)
	if err != nil {
		log.Fatalf("Failed to initialize shopping cart: %v", err)
	}

	menu := console.NewMenu(cart, os.Stdin, os.Stdout)
	menu.Run()

	logger.Info("Session ended")
}
