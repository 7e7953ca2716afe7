package main

import (
	"flag"
	"log"

	"github.com/meridiancruises/compliance-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the api server")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
	if !*shouldRunMigrations && !*shouldRunServer {
		log.Fatal("nothing to run, use -migrations and/or -server")
	}
}
