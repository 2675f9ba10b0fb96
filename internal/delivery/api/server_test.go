package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/policy"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/testdb"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
)

const mediaBaseURL = "http://storefront.test/media"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testAPI struct {
	echo *echo.Echo
	db   *gorm.DB
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := testdb.New(t)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	mediaStorage := storage.NewBlobStorage(bucket, mediaBaseURL)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	txManager := postgres.NewTransactionManager(db)
	userRepo := postgres.NewUserRepository(db)
	shopRepo := postgres.NewShopRepository(db)
	productRepo := postgres.NewProductRepository(db)
	authorizer := policy.NewAuthorizer()

	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo: userRepo, Hasher: auth.NewBcryptHasher(cfg), TokenService: tokens, Authorizer: authorizer, Logger: logger,
	})

	routerParams := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: userUC, Logger: logger}),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC}),
		CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{
			CategoryUC: impl.NewCategoryService(impl.CategoryServiceParams{
				CategoryRepo: postgres.NewCategoryRepository(db), Authorizer: authorizer, Logger: logger,
			}),
		}),
		ShopHandler: handler.NewShopHandler(handler.ShopHandlerParams{
			ShopUC: impl.NewShopService(impl.ShopServiceParams{
				TxManager: txManager, ShopRepo: shopRepo, Authorizer: authorizer, MediaStorage: mediaStorage,
				QRCodeService: qrcode.NewQRCodeService(cfg), Config: cfg, Logger: logger,
			}),
		}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: impl.NewProductService(impl.ProductServiceParams{
				TxManager: txManager, ProductRepo: productRepo, Authorizer: authorizer, MediaStorage: mediaStorage,
				Config: cfg, Logger: logger,
			}),
		}),
		CartHandler: handler.NewCartHandler(handler.CartHandlerParams{
			CartUC: impl.NewCartService(impl.CartServiceParams{
				TxManager: txManager, CartRepo: postgres.NewCartRepository(db), Authorizer: authorizer, Logger: logger,
			}),
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: impl.NewOrderService(impl.OrderServiceParams{
				TxManager: txManager, OrderRepo: postgres.NewOrderRepository(db), Authorizer: authorizer, Logger: logger,
			}),
		}),
		ReviewHandler: handler.NewReviewHandler(handler.ReviewHandlerParams{
			ReviewUC: impl.NewReviewService(impl.ReviewServiceParams{
				ReviewRepo: postgres.NewReviewRepository(db), ProductRepo: productRepo, Authorizer: authorizer, Logger: logger,
			}),
		}),
		MediaHandler:   handler.NewMediaHandler(handler.MediaHandlerParams{Storage: mediaStorage}),
		HealthHandler:  handler.NewHealthHandler(handler.HealthHandlerParams{DB: db}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens, logger),
	}

	return &testAPI{
		echo: api.NewEcho(cfg, logger, routerParams),
		db:   db,
	}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "JWT "+token)
	}

	return a.serve(t, req)
}

func (a *testAPI) serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, &env
}

// signUp registers an account and returns its access token. Staff accounts
// are promoted in the database before logging in, since no endpoint grants
// staff.
func (a *testAPI) signUp(t *testing.T, email string, staff bool) string {
	t.Helper()

	rec, _ := a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": email, "password": "Passw0rd!", "first_name": "Test",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	if staff {
		result := a.db.Model(&model.UserModel{}).Where("email = ?", email).Update("is_staff", true)
		require.NoError(t, result.Error)
		require.EqualValues(t, 1, result.RowsAffected)
	}

	rec, env := a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email, "password": "Passw0rd!"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tokens handler.TokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &tokens))

	return tokens.Access
}

func decodeData[T any](t *testing.T, env *envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func assertAmount(t *testing.T, expected string, actual any) {
	t.Helper()

	raw, ok := actual.(string)
	require.True(t, ok, "amount should be a JSON string, got %T", actual)
	assert.True(t, decimal.RequireFromString(expected).Equal(decimal.RequireFromString(raw)), "expected %s, got %s", expected, raw)
}

type idResponse struct {
	ID string `json:"id"`
}

func TestAPI_Health(t *testing.T) {
	a := newTestAPI(t)

	rec, env := a.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))
}

func TestAPI_AuthFlow(t *testing.T) {
	a := newTestAPI(t)
	token := a.signUp(t, "alice@example.com", false)

	rec, env := a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{"email": "alice@example.com", "password": "Passw0rd!"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{"email": "weak@example.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PASSWORD_STRENGTH", env.Error.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{"email": "not-an-email", "password": "Passw0rd!"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"email": "email"}, env.Error.Details)

	rec, env = a.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "alice@example.com", "password": "wrong-pass1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)

	rec, env = a.do(t, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeData[map[string]any](t, env)
	assert.Equal(t, "alice@example.com", me["email"])
	assert.NotContains(t, me, "password_hash")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec, _ = a.serve(t, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = a.do(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "NOT_AUTHENTICATED", env.Error.Code)

	rec, _ = a.do(t, http.MethodGet, "/api/v1/users/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = a.do(t, http.MethodPatch, "/api/v1/users/me", token, map[string]string{"phone": "+15550100", "birthday": "1990-04-01"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "+15550100", decodeData[map[string]any](t, env)["phone"])

	rec, _ = a.do(t, http.MethodPatch, "/api/v1/users/me", token, map[string]string{"birthday": "01/04/1990"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_CatalogPermissions(t *testing.T) {
	a := newTestAPI(t)
	customer := a.signUp(t, "customer@example.com", false)
	staff := a.signUp(t, "staff@example.com", true)

	rec, _ := a.do(t, http.MethodPost, "/api/v1/categories", "", map[string]string{"name": "Books"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env := a.do(t, http.MethodPost, "/api/v1/categories", customer, map[string]string{"name": "Books"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "PERMISSION_DENIED", env.Error.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/categories", staff, map[string]string{"name": "Books"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	category := decodeData[idResponse](t, env)

	rec, _ = a.do(t, http.MethodPost, "/api/v1/categories/", staff, map[string]string{"name": "Books"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = a.do(t, http.MethodGet, "/api/v1/categories/"+category.ID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = a.do(t, http.MethodGet, "/api/v1/categories/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = a.do(t, http.MethodPatch, "/api/v1/categories/"+category.ID, staff, map[string]string{"description": "Paper"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Paper", decodeData[map[string]any](t, env)["description"])

	rec, _ = a.do(t, http.MethodDelete, "/api/v1/categories/"+category.ID, staff, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_ShopAndProducts(t *testing.T) {
	a := newTestAPI(t)
	owner := a.signUp(t, "owner@example.com", false)
	stranger := a.signUp(t, "stranger@example.com", false)

	rec, env := a.do(t, http.MethodPost, "/api/v1/shops", owner, map[string]string{"name": "Corner Store"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	shop := decodeData[idResponse](t, env)

	rec, _ = a.do(t, http.MethodPatch, "/api/v1/shops/"+shop.ID, stranger, map[string]string{"address": "elsewhere"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/products", stranger, map[string]any{"name": "Pen", "price": "1.50", "shop": shop.ID})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "SHOP_OWNERSHIP_REQUIRED", env.Error.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/products", owner, map[string]any{"name": "Pen", "price": "1.50", "discount": 101, "shop": shop.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_DISCOUNT", env.Error.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/products", owner, map[string]any{"name": "Pen"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/products", owner, map[string]any{"name": "Pen", "price": "1.50", "shop": shop.ID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	pen := decodeData[idResponse](t, env)

	rec, _ = a.do(t, http.MethodPost, "/api/v1/products", owner, map[string]any{"name": "Notebook", "price": 12, "description": "Spiral bound, pen loop included", "shop": shop.ID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = a.do(t, http.MethodGet, "/api/v1/products?ordering=-price", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decodeData[[]map[string]any](t, env)
	require.Len(t, listed, 2)
	assert.Equal(t, "Notebook", listed[0]["name"])
	assert.Equal(t, "12.00", listed[0]["price"])
	assert.Equal(t, "1.50", listed[1]["price"])

	rec, env = a.do(t, http.MethodGet, "/api/v1/products?search=PE", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	found := decodeData[[]map[string]any](t, env)
	require.Len(t, found, 1)
	assert.Equal(t, "Pen", found[0]["name"])

	rec, env = a.do(t, http.MethodGet, "/api/v1/products?search=loop", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[[]map[string]any](t, env))

	rec, env = a.do(t, http.MethodGet, "/api/v1/products?search=%25", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[[]map[string]any](t, env))

	rec, env = a.do(t, http.MethodGet, "/api/v1/products?ordering=secret", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ORDERING", env.Error.Code)

	rec, env = a.do(t, http.MethodDelete, "/api/v1/shops/"+shop.ID, owner, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SHOP_HAS_PRODUCTS", env.Error.Code)

	rec, _ = a.do(t, http.MethodDelete, "/api/v1/products/"+pen.ID, stranger, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = a.do(t, http.MethodDelete, "/api/v1/products/"+pen.ID, owner, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = a.do(t, http.MethodGet, "/api/v1/shops/"+shop.ID+"/qr", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	payload := `{"type":"shop","shop_id":"` + shop.ID + `"}`
	rec, env = a.do(t, http.MethodPost, "/api/v1/shops/scan", "", map[string]string{"payload": payload})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, shop.ID, decodeData[idResponse](t, env).ID)

	rec, env = a.do(t, http.MethodPost, "/api/v1/shops/scan", "", map[string]string{"payload": `{"type":"product"}`})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QR_CODE", env.Error.Code)
}

func TestAPI_ProductImageUpload(t *testing.T) {
	a := newTestAPI(t)
	owner := a.signUp(t, "owner@example.com", false)

	_, env := a.do(t, http.MethodPost, "/api/v1/shops", owner, map[string]string{"name": "Corner Store"})
	shop := decodeData[idResponse](t, env)
	_, env = a.do(t, http.MethodPost, "/api/v1/products", owner, map[string]any{"name": "Pen", "price": "1.50", "shop": shop.ID})
	product := decodeData[idResponse](t, env)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR-image-bytes")
	upload := func(content []byte) (*httptest.ResponseRecorder, *envelope) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", "pen.png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+product.ID+"/image", &body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(echo.HeaderAuthorization, "JWT "+owner)

		return a.serve(t, req)
	}

	rec, env := upload([]byte("plain text is not an image"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNSUPPORTED_MEDIA", env.Error.Code)

	rec, env = upload(png)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	image, _ := decodeData[map[string]any](t, env)["image"].(string)
	require.True(t, strings.HasPrefix(image, mediaBaseURL+"/products/"+product.ID+"/"), image)

	rec, _ = a.do(t, http.MethodGet, strings.TrimPrefix(image, "http://storefront.test"), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec, _ = a.do(t, http.MethodGet, "/media/products/missing.png", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_CartCheckout(t *testing.T) {
	a := newTestAPI(t)
	owner := a.signUp(t, "owner@example.com", false)
	customer := a.signUp(t, "customer@example.com", false)
	staff := a.signUp(t, "staff@example.com", true)

	_, env := a.do(t, http.MethodPost, "/api/v1/shops", owner, map[string]string{"name": "Corner Store"})
	shop := decodeData[idResponse](t, env)
	_, env = a.do(t, http.MethodPost, "/api/v1/products", owner, map[string]any{"name": "Notebook", "price": "10.00", "discount": 20, "shop": shop.ID})
	product := decodeData[idResponse](t, env)

	rec, _ := a.do(t, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/orders", customer, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_CART", env.Error.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/cart", customer, map[string]any{"product": product.ID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, _ = a.do(t, http.MethodPost, "/api/v1/cart", customer, map[string]any{"product": product.ID, "quantity": 32768})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/cart", customer, map[string]any{"product": product.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	line := decodeData[idResponse](t, env)

	rec, env = a.do(t, http.MethodPost, "/api/v1/cart", customer, map[string]any{"product": product.ID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 3, decodeData[map[string]any](t, env)["quantity"])

	rec, env = a.do(t, http.MethodPatch, "/api/v1/cart/"+line.ID, customer, map[string]any{"quantity": 4, "product": product.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CART_FIELD_NOT_EDITABLE", env.Error.Code)

	rec, _ = a.do(t, http.MethodPatch, "/api/v1/cart/"+line.ID, customer, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = a.do(t, http.MethodPatch, "/api/v1/cart/"+line.ID, owner, map[string]any{"quantity": 4})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = a.do(t, http.MethodPatch, "/api/v1/cart/"+line.ID, customer, map[string]any{"quantity": 4})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 4, decodeData[map[string]any](t, env)["quantity"])

	rec, env = a.do(t, http.MethodPost, "/api/v1/orders", customer, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decodeData[map[string]any](t, env)
	assert.Equal(t, "32.00", order["total_amount"])
	assert.Equal(t, "pending", order["status"])
	orderID, _ := order["id"].(string)

	rec, env = a.do(t, http.MethodGet, "/api/v1/cart", customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData[[]any](t, env))

	rec, _ = a.do(t, http.MethodGet, "/api/v1/orders/"+orderID, owner, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = a.do(t, http.MethodPatch, "/api/v1/orders/"+orderID, customer, map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = a.do(t, http.MethodPatch, "/api/v1/orders/"+orderID, staff, map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "shipped", decodeData[map[string]any](t, env)["status"])

	rec, env = a.do(t, http.MethodPatch, "/api/v1/orders/"+orderID, staff, map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ORDER_STATUS", env.Error.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/items", staff, map[string]any{"product": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assertAmount(t, "40.00", decodeData[map[string]any](t, env)["total_amount"])

	rec, _ = a.do(t, http.MethodDelete, "/api/v1/products/"+product.ID, owner, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = a.do(t, http.MethodDelete, "/api/v1/orders/"+orderID, staff, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_Reviews(t *testing.T) {
	a := newTestAPI(t)
	owner := a.signUp(t, "owner@example.com", false)
	author := a.signUp(t, "author@example.com", false)
	other := a.signUp(t, "other@example.com", false)

	_, env := a.do(t, http.MethodPost, "/api/v1/shops", owner, map[string]string{"name": "Corner Store"})
	shop := decodeData[idResponse](t, env)
	_, env = a.do(t, http.MethodPost, "/api/v1/products", owner, map[string]any{"name": "Pen", "price": "1.00", "shop": shop.ID})
	product := decodeData[idResponse](t, env)

	rec, env := a.do(t, http.MethodPost, "/api/v1/reviews", author, map[string]any{"product": product.ID, "grade": 7})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_GRADE", env.Error.Code)

	rec, env = a.do(t, http.MethodPost, "/api/v1/reviews", author, map[string]any{"product": product.ID, "grade": 4, "comment": "solid"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	review := decodeData[idResponse](t, env)

	rec, env = a.do(t, http.MethodGet, "/api/v1/reviews?product="+product.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]any](t, env), 1)

	rec, _ = a.do(t, http.MethodPatch, "/api/v1/reviews/"+review.ID, other, map[string]any{"comment": "hijacked"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = a.do(t, http.MethodDelete, "/api/v1/reviews/"+review.ID, author, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
