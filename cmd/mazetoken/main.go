// Command mazetoken mints a bearer token for the protected maze routes.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
)

func main() {
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "signing secret (defaults to $JWT_SECRET)")
	issuer := flag.String("issuer", os.Getenv("JWT_ISSUER"), "issuer claim (defaults to $JWT_ISSUER)")
	subject := flag.String("sub", "operator", "subject claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	log, err := logger.New("MAZETOKEN", "", os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *secret == "" || *issuer == "" {
		log.Error("both -secret and -issuer are required")
		os.Exit(2)
	}

	t, err := token.NewJwtService(*secret, *issuer).Generate(map[string]interface{}{"sub": *subject}, *ttl)
	if err != nil {
		log.Error(fmt.Sprintf("Generating token: %v", err))
		os.Exit(1)
	}
	fmt.Println(t)
}
