package main

import (
	"log"
	"net/http"
	"os"

	"github.com/hqvu/furnistore/app/cmd"
	"github.com/hqvu/furnistore/app/configs"
	"github.com/hqvu/furnistore/app/routes"
)

func main() {
	env := configs.LoadENV

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("database connected")

	router := routes.NewRouter(db, env)

	server := http.Server{
		Addr:    ":" + env.Port,
		Handler: router,
	}

	log.Printf("server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}
