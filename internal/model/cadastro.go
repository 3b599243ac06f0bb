package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CargoCaixa         = "caixa"
	CargoGerente       = "gerente"
	CargoAdministrador = "administrador"
)

// Funcionario is an employee who can log in.
type Funcionario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CPF       string    `gorm:"column:cpf;not null"`
	Nome      string    `gorm:"not null"`
	Email     *string
	SenhaHash string `gorm:"not null"`
	Cargo     string `gorm:"type:varchar(20);not null"`
	Ativo     bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CPFCNPJ   string    `gorm:"column:cpf_cnpj;not null"`
	Nome      string    `gorm:"not null"`
	Email     *string
	Telefone  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Fornecedor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CNPJ        string    `gorm:"column:cnpj;not null"`
	RazaoSocial string    `gorm:"not null"`
	Email       *string
	Telefone    *string
	Ativo       bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Fornecedor) TableName() string { return "fornecedores" }

// TipoPagamento is seeded by the first migration; id 1 is cash.
type TipoPagamento struct {
	ID        int    `gorm:"primaryKey"`
	Descricao string `gorm:"not null"`
}

func (TipoPagamento) TableName() string { return "tipos_pagamento" }
