package main

import (
	"fairhold/cmd"
	"log"
	"os"
	"strconv"
)

const defaultPort = 3009

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	port := defaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		port, err = strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("invalid PORT %q: %v", raw, err)
		}
	}

	apiHandler.Logger.Infow("starting api", "port", port, "commit", os.Getenv("commit_hash"))
	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
