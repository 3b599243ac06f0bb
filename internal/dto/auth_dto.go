package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest accepts the employee CPF or e-mail in Login.
type LoginRequest struct {
	Login string `json:"login" validate:"required,min=3"`
	Senha string `json:"senha" validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CriarFuncionarioRequest struct {
	CPF   string  `json:"cpf"   validate:"required,numeric,len=11"`
	Nome  string  `json:"nome"  validate:"required,min=2,max=120"`
	Email *string `json:"email" validate:"omitempty,email"`
	Senha string  `json:"senha" validate:"required,min=8"`
	Cargo string  `json:"cargo" validate:"required,oneof=caixa gerente administrador"`
}

type FuncionarioPatch struct {
	Nome  *string `json:"nome"  validate:"omitempty,min=2,max=120"`
	Email *string `json:"email" validate:"omitempty,email"`
	Cargo *string `json:"cargo" validate:"omitempty,oneof=caixa gerente administrador"`
	Senha *string `json:"senha" validate:"omitempty,min=8"`
}

// ToUpdates leaves the password out; the service hashes it separately.
func (p FuncionarioPatch) ToUpdates() map[string]any {
	u := map[string]any{}
	if p.Nome != nil {
		u["nome"] = *p.Nome
	}
	if p.Email != nil {
		u["email"] = *p.Email
	}
	if p.Cargo != nil {
		u["cargo"] = *p.Cargo
	}
	return u
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FuncionarioResponse struct {
	ID    string  `json:"id"`
	CPF   string  `json:"cpf"`
	Nome  string  `json:"nome"`
	Email *string `json:"email"`
	Cargo string  `json:"cargo"`
	Ativo bool    `json:"ativo"`
}

type LoginResponse struct {
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	TokenType    string              `json:"token_type"`
	ExpiresIn    int                 `json:"expires_in"` // seconds
	Funcionario  FuncionarioResponse `json:"funcionario"`
}
