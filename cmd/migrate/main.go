package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/nkaz/questline/pkg/config"
	"github.com/pressly/goose"
)

func main() {
	var dir string
	var command string
	flag.StringVar(&dir, "dir", "./migrations", "directory with migration files")
	flag.StringVar(&command, "command", "up", "goose command: up, down, status")
	flag.Parse()

	cfg := config.New()
	connString := fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=disable",
		cfg.GetString("POSTGRES_USER"),
		cfg.GetString("POSTGRES_PASSWORD"),
		cfg.GetString("POSTGRES_DB_ADDRESS"),
		cfg.GetString("POSTGRES_DB"),
	)
	db, err := sql.Open("postgres", connString)
	if err != nil {
		log.Fatal("opening database error: " + err.Error())
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("setting goose dialect error: " + err.Error())
	}
	if err := goose.Run(command, db, dir); err != nil {
		log.Fatal("running migrations error: " + err.Error())
	}
	log.Println("migrations finished")
}
