package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketsymbol/internal/feature/marketsymbol/adapters"
	"marketsymbol/internal/feature/marketsymbol/adapters/slash"
	"marketsymbol/internal/feature/marketsymbol/adapters/suffix"
	"marketsymbol/internal/feature/marketsymbol/domain"
	"marketsymbol/internal/feature/marketsymbol/domain/entity"
	"marketsymbol/internal/feature/marketsymbol/parser"
	"marketsymbol/internal/feature/marketsymbol/transport/http/dto"
	"marketsymbol/internal/feature/marketsymbol/usecase"
)

// SymbolUsecase はシンボルのパース・変換に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	Normalize(ctx context.Context, raw string) (string, error)
	Parse(ctx context.Context, raw string) (entity.Symbol, error)
	ParseValue(ctx context.Context, v any) (entity.Symbol, error)
	ParseBatch(ctx context.Context, raws []string) ([]parser.Result, error)
	ToSymbol(ctx context.Context, vendor, vendorSymbol string) (entity.Symbol, error)
	FromSymbol(ctx context.Context, vendor, raw string) (string, error)
	ListVendors(ctx context.Context) ([]string, error)
	RegisterVendor(ctx context.Context, spec usecase.VendorSpec) error
}

// SymbolHandler はシンボルに関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// Normalize はクエリ q を正規化した結果を返すAPIです。
func (h *SymbolHandler) Normalize(c *gin.Context) {
	q, ok := requireQuery(c)
	if !ok {
		return
	}
	out, err := h.uc.Normalize(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NormalizeResponse{Input: q, Normalized: out})
}

// Parse はクエリ q のシンボル文字列をパースするAPIです。
// パースに失敗した場合は 422 とエラーコードを返します。
func (h *SymbolHandler) Parse(c *gin.Context) {
	q, ok := requireQuery(c)
	if !ok {
		return
	}
	sym, err := h.uc.Parse(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSymbolResponse(sym))
}

// ParseJSON は JSON ボディ {"symbol": ...} をパースするAPIです。
// symbol が文字列でない場合は呼び出し側の誤りとして 400 を返します。
func (h *SymbolHandler) ParseJSON(c *gin.Context) {
	var req dto.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sym, err := h.uc.ParseValue(c.Request.Context(), req.Symbol)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSymbolResponse(sym))
}

// ParseBatch は複数のシンボル文字列をまとめてパースするAPIです。
// 個々の失敗はレスポンス内に含め、リクエスト全体は 200 を返します。
func (h *SymbolHandler) ParseBatch(c *gin.Context) {
	var req dto.BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	results, err := h.uc.ParseBatch(c.Request.Context(), req.Symbols)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := dto.BatchParseResponse{Results: make([]dto.BatchParseItem, 0, len(results))}
	for _, r := range results {
		item := dto.BatchParseItem{Input: r.Raw}
		if r.Err != nil {
			e := dto.NewErrorResponse(r.Err)
			item.Error = &e
			resp.Failed++
		} else {
			s := dto.NewSymbolResponse(r.Symbol)
			item.Symbol = &s
		}
		resp.Results = append(resp.Results, item)
	}
	c.JSON(http.StatusOK, resp)
}

// ListVendors は登録済みベンダー名の一覧を返すAPIです。
func (h *SymbolHandler) ListVendors(c *gin.Context) {
	vendors, err := h.uc.ListVendors(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if vendors == nil {
		vendors = []string{}
	}
	c.JSON(http.StatusOK, dto.VendorListResponse{Vendors: vendors})
}

// VendorToSymbol はベンダー固有シンボル q を統一シンボルに変換するAPIです。
func (h *SymbolHandler) VendorToSymbol(c *gin.Context) {
	q, ok := requireQuery(c)
	if !ok {
		return
	}
	sym, err := h.uc.ToSymbol(c.Request.Context(), c.Param("vendor"), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSymbolResponse(sym))
}

// SymbolToVendor は統一シンボル q をベンダー固有シンボルに変換するAPIです。
func (h *SymbolHandler) SymbolToVendor(c *gin.Context) {
	q, ok := requireQuery(c)
	if !ok {
		return
	}
	vendor := c.Param("vendor")
	out, err := h.uc.FromSymbol(c.Request.Context(), vendor, q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.VendorSymbolResponse{Vendor: vendor, VendorSymbol: out})
}

// RegisterVendor は宣言的な定義からベンダーアダプターを登録するAPIです。
// 認証必須のルートに配置してください。
func (h *SymbolHandler) RegisterVendor(c *gin.Context) {
	var req dto.RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	spec := usecase.VendorSpec{
		Name:     req.Name,
		Kind:     req.Kind,
		Suffixes: req.Suffixes,
		Exchange: req.Exchange,
	}
	if err := h.uc.RegisterVendor(c.Request.Context(), spec); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vendor": req.Name})
}

func requireQuery(c *gin.Context) (string, bool) {
	q, ok := c.GetQuery("q")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: q"})
		return "", false
	}
	return q, true
}

// writeError はエラーの種類に応じたステータスコードでレスポンスを書き込みます。
func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), errorBody(err))
}

func errorBody(err error) dto.ErrorResponse {
	body := dto.NewErrorResponse(err)
	if errors.Is(err, domain.ErrInvalidInputType) {
		body.Kind = "INVALID_INPUT_TYPE"
	}
	return body
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInputType),
		errors.Is(err, adapters.ErrEmptyVendorName),
		errors.Is(err, adapters.ErrNilAdapter),
		errors.Is(err, suffix.ErrInvalidSuffixTable),
		errors.Is(err, usecase.ErrUnknownVendorKind):
		return http.StatusBadRequest
	case errors.Is(err, adapters.ErrAdapterNotFound):
		return http.StatusNotFound
	case errors.Is(err, adapters.ErrAdapterAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, adapters.ErrInvalidVendorFormat),
		errors.Is(err, adapters.ErrUnsupportedAssetClass),
		errors.Is(err, suffix.ErrUnknownSuffix),
		errors.Is(err, slash.ErrExchangeMismatch):
		return http.StatusUnprocessableEntity
	}
	if _, ok := domain.CodeOf(err); ok {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
