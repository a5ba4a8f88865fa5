package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	symbolhandler "marketsymbol/internal/feature/marketsymbol/transport/handler"
	healthhandler "marketsymbol/internal/platform/http/handler"
	jwtmw "marketsymbol/internal/platform/jwt"
	"marketsymbol/internal/platform/ratelimiter"
)

// Options はルーターの横断的な設定です。
type Options struct {
	JWTSecret   string
	CORSEnabled bool
	// Limiter が nil の場合はレート制限を行いません。
	Limiter ratelimiter.Limiter
	// VendorCount は /healthz で返す登録済みベンダー数です (nil 可)。
	VendorCount func() int
}

func NewRouter(symbol *symbolhandler.SymbolHandler, opts Options) *gin.Engine {
	r := gin.Default()

	if opts.CORSEnabled {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	// 導通確認用 (レート制限の対象外)
	health := healthhandler.Health(opts.VendorCount)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	api := r.Group("/")
	if opts.Limiter != nil {
		api.Use(ratelimiter.Middleware(opts.Limiter))
	}

	// 認証不要
	symbols := api.Group("/symbols")
	{
		symbols.GET("/normalize", symbol.Normalize)
		symbols.GET("/parse", symbol.Parse)
		symbols.POST("/parse", symbol.ParseJSON)
		symbols.POST("/parse/batch", symbol.ParseBatch)
	}
	vendors := api.Group("/vendors")
	{
		vendors.GET("", symbol.ListVendors)
		vendors.GET("/:vendor/symbol", symbol.VendorToSymbol)
		vendors.GET("/:vendor/text", symbol.SymbolToVendor)
	}

	// 認証必須のルート
	// → リクエストヘッダーに JWT が必要になる
	admin := api.Group("/")
	admin.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		admin.POST("/vendors", symbol.RegisterVendor)
	}

	return r
}
