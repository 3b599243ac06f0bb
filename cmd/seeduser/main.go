// cmd/seeduser creates or refreshes the first administrador account.
// Usage: SEED_CPF=... SEED_SENHA=... go run ./cmd/seeduser
package main

import (
	"context"
	"os"
	"time"

	"pdvmercado/internal/config"
	"pdvmercado/internal/infra"
	"pdvmercado/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	cpf := envOr("SEED_CPF", "00000000191")
	senha := envOr("SEED_SENHA", "admin1234")
	email := envOr("SEED_EMAIL", "admin@pdvmercado.local")

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}

	f := &model.Funcionario{
		ID:        uuid.New(),
		CPF:       cpf,
		Nome:      "Administrador",
		Email:     &email,
		SenhaHash: string(hash),
		Cargo:     model.CargoAdministrador,
		Ativo:     true,
	}
	err = db.WithContext(context.Background()).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cpf"}},
		DoUpdates: clause.AssignmentColumns([]string{"senha_hash", "cargo", "ativo", "updated_at"}),
	}).Create(f).Error
	if err != nil {
		log.Fatal().Err(err).Msg("upsert funcionario")
	}
	log.Info().Str("cpf", cpf).Msg("administrador criado/atualizado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
