package router

import (
	"time"

	"pdvmercado/internal/config"
	"pdvmercado/internal/handler"
	"pdvmercado/internal/middleware"
	"pdvmercado/internal/model"
	"pdvmercado/internal/repository"
	"pdvmercado/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// fila receives post-commit document jobs; nil disables them.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, fila service.Enfileirador) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(rdb, cfg.RateLimitPorMinuto, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	funcionarioRepo := repository.NewFuncionarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	estoqueRepo := repository.NewEstoqueRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	devolucaoRepo := repository.NewDevolucaoRepository(db)
	caixaRepo := repository.NewCaixaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(funcionarioRepo, cfg)
	estoqueSvc := service.NewEstoqueService(estoqueRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, estoqueRepo, rdb)
	clienteSvc := service.NewClienteService(clienteRepo)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo)
	vendaSvc := service.NewVendaService(vendaRepo, clienteRepo, caixaRepo, estoqueSvc, fila, cfg.TipoPagamentoDinheiroID)
	compraSvc := service.NewCompraService(compraRepo, estoqueSvc)
	devolucaoSvc := service.NewDevolucaoService(devolucaoRepo, estoqueSvc, fila, cfg.ValidadeCreditoDias)
	conciliacaoSvc := service.NewConciliacaoService(caixaRepo)
	caixaSvc := service.NewCaixaService(caixaRepo, conciliacaoSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	estoqueH := handler.NewEstoqueHandler(estoqueSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	devolucoesH := handler.NewDevolucoesHandler(devolucaoSvc)
	caixaH := handler.NewCaixaHandler(caixaSvc, conciliacaoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check, no auth required
	r.GET("/v1/precos/:codigo_barras", produtosH.ConsultarPreco)

	todos := middleware.RequireRole(model.CargoCaixa, model.CargoGerente, model.CargoAdministrador)
	gestao := middleware.RequireRole(model.CargoGerente, model.CargoAdministrador)
	admin := middleware.RequireRole(model.CargoAdministrador)

	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		vendas := v1.Group("/vendas", todos)
		{
			vendas.POST("", vendasH.RegistrarVenda)
			vendas.GET("", vendasH.ListarVendas)
			vendas.GET("/hoje", vendasH.VendasHoje)
			vendas.GET("/:id", vendasH.BuscarVenda)
		}

		v1.POST("/devolucoes", todos, devolucoesH.RegistrarDevolucao)
		v1.GET("/creditos/:codigo", todos, devolucoesH.BuscarCredito)

		compras := v1.Group("/compras", gestao)
		{
			compras.POST("", comprasH.RegistrarCompra)
			compras.GET("/:id", comprasH.BuscarCompra)
		}

		caixa := v1.Group("/caixa", todos)
		{
			caixa.POST("/abrir", caixaH.Abrir)
			caixa.GET("/aberto", caixaH.Aberto)
			caixa.GET("/historial", caixaH.Historial)
			caixa.GET("/relatorio/fechados", gestao, caixaH.RelatorioFechados)
			caixa.POST("/:id/fechar", caixaH.Fechar)
			caixa.GET("/:id", caixaH.BuscarPorID)
			caixa.GET("/:id/resumo", caixaH.Resumo)
		}

		// Catalog reads for every operator, writes for management
		v1.GET("/produtos", todos, produtosH.Listar)
		v1.GET("/produtos/:id", todos, produtosH.BuscarPorID)
		prods := v1.Group("/produtos", gestao)
		{
			prods.POST("", produtosH.Criar)
			prods.PATCH("/:id", produtosH.Atualizar)
			prods.DELETE("/:id", produtosH.Desativar)
		}

		estoque := v1.Group("/estoque")
		{
			estoque.GET("/movimentos", gestao, estoqueH.ListarMovimentos)
			estoque.GET("/:produto_id", todos, estoqueH.Consultar)
			estoque.PUT("/:produto_id", gestao, estoqueH.Definir)
		}

		clientes := v1.Group("/clientes", todos)
		{
			clientes.POST("", clientesH.Criar)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/documento/:cpf_cnpj", clientesH.BuscarPorDocumento)
			clientes.GET("/:id", clientesH.BuscarPorID)
			clientes.PATCH("/:id", clientesH.Atualizar)
		}

		fornecedores := v1.Group("/fornecedores", gestao)
		{
			fornecedores.POST("", fornecedoresH.Criar)
			fornecedores.GET("", fornecedoresH.Listar)
			fornecedores.GET("/:id", fornecedoresH.BuscarPorID)
			fornecedores.PATCH("/:id", fornecedoresH.Atualizar)
		}

		funcionarios := v1.Group("/funcionarios", admin)
		{
			funcionarios.POST("", authH.CriarFuncionario)
			funcionarios.GET("", authH.ListarFuncionarios)
			funcionarios.PATCH("/:id", authH.AtualizarFuncionario)
			funcionarios.DELETE("/:id", authH.DesativarFuncionario)
		}
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
