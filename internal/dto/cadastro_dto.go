package dto

// ─── Clientes ────────────────────────────────────────────────────────────────

type CriarClienteRequest struct {
	CPFCNPJ  string  `json:"cpf_cnpj" validate:"required,numeric,min=11,max=14"`
	Nome     string  `json:"nome"     validate:"required,min=2,max=120"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Telefone *string `json:"telefone" validate:"omitempty,max=20"`
}

type ClientePatch struct {
	Nome     *string `json:"nome"     validate:"omitempty,min=2,max=120"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Telefone *string `json:"telefone" validate:"omitempty,max=20"`
}

func (p ClientePatch) ToUpdates() map[string]any {
	u := map[string]any{}
	if p.Nome != nil {
		u["nome"] = *p.Nome
	}
	if p.Email != nil {
		u["email"] = *p.Email
	}
	if p.Telefone != nil {
		u["telefone"] = *p.Telefone
	}
	return u
}

type ClienteResponse struct {
	ID       string  `json:"id"`
	CPFCNPJ  string  `json:"cpf_cnpj"`
	Nome     string  `json:"nome"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
}

type ClienteFilter struct {
	Nome string `form:"nome"`
	Paginacao
}

// ─── Fornecedores ────────────────────────────────────────────────────────────

type CriarFornecedorRequest struct {
	CNPJ        string  `json:"cnpj"         validate:"required,numeric,len=14"`
	RazaoSocial string  `json:"razao_social" validate:"required,min=2,max=160"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Telefone    *string `json:"telefone"     validate:"omitempty,max=20"`
}

type FornecedorPatch struct {
	RazaoSocial *string `json:"razao_social" validate:"omitempty,min=2,max=160"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Telefone    *string `json:"telefone"     validate:"omitempty,max=20"`
	Ativo       *bool   `json:"ativo"`
}

func (p FornecedorPatch) ToUpdates() map[string]any {
	u := map[string]any{}
	if p.RazaoSocial != nil {
		u["razao_social"] = *p.RazaoSocial
	}
	if p.Email != nil {
		u["email"] = *p.Email
	}
	if p.Telefone != nil {
		u["telefone"] = *p.Telefone
	}
	if p.Ativo != nil {
		u["ativo"] = *p.Ativo
	}
	return u
}

type FornecedorResponse struct {
	ID          string  `json:"id"`
	CNPJ        string  `json:"cnpj"`
	RazaoSocial string  `json:"razao_social"`
	Email       *string `json:"email"`
	Telefone    *string `json:"telefone"`
	Ativo       bool    `json:"ativo"`
}

type FornecedorFilter struct {
	RazaoSocial string `form:"razao_social"`
	Paginacao
}
