// Command issuetoken prints an admin JWT for POST /vendors, signed with JWT_SECRET.
//
//	issuetoken [-sub NAME]
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"marketsymbol/internal/app/config"
	jwtmw "marketsymbol/internal/platform/jwt"
)

func main() {
	sub := flag.String("sub", "admin", "token subject")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	cfg, err := config.LoadConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	token, err := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTTTL).GenerateToken(*sub)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
