package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chatting/chatting/internal/actors/jwt"
	"github.com/chatting/chatting/internal/config"
	log "github.com/sirupsen/logrus"
)

var (
	subject = flag.String("subject", "", "subject the access token is issued to")
	ttl     = flag.Duration("ttl", time.Hour, "validity of the access token")
)

// token prints an access token signed with the configured AUTH_SECRET, for local use.
func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("error loading configuration")
	}
	authority, err := jwt.NewAuthority(jwt.AuthorityArgs{Secret: []byte(cfg.Auth.Secret), Issuer: cfg.Auth.Issuer})
	if err != nil {
		log.WithError(err).Fatal("AUTH_SECRET must be set")
	}
	token, err := authority.Issue(*subject, *ttl)
	if err != nil {
		log.WithError(err).Fatal("error issuing token")
	}
	fmt.Fprintln(os.Stdout, token)
}
