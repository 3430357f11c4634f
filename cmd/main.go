package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mahdiarv/seabattle-backend/api"
	"github.com/mahdiarv/seabattle-backend/db"
	"github.com/mahdiarv/seabattle-backend/db/sqlc"
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
	mc "github.com/mahdiarv/seabattle-backend/models/connection"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}

	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	psqlDb := db.MustConnectToDb(os.Getenv("DATABASE_URL"))
	querier := sqlc.New(psqlDb)

	sessionManager := mc.NewSeabattleSessionManager()
	go sessionManager.CleanupPeriodically()

	gameManager := mb.NewBattleshipGameManager()

	rp := api.NewRequestProcessor(sessionManager, gameManager, querier)

	mux := http.NewServeMux()
	mux.Handle("GET /seabattle", rp)

	log.Printf("Listening to port %s\n", port)
	log.Fatalln(http.ListenAndServe("0.0.0.0:"+port, mux))
}
