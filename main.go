package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"blogview/routes"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogview version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogview <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve [addr]                   Run the blog service (default address :8080).
`
	fmt.Println(helpText)
}

// serve opens the database and runs the HTTP service.
func serve() {
	addr := ":8080"
	if len(os.Args) > 2 {
		addr = os.Args[2]
	}

	opts := badger.DefaultOptions("data/badger").WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	secret := os.Getenv("BLOGVIEW_SESSION_SECRET")
	if secret == "" {
		log.Println("BLOGVIEW_SESSION_SECRET not set; sessions will not survive restarts")
		secret = "dev-only-insecure-secret"
	}

	router := routes.SetupRoutes(db, []byte(secret))

	log.Printf("Starting blog service on %s", addr)
	if err := routes.StartServer(addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
