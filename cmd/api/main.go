package main

import (
	"log"
	"os"
	"time"

	"vastram/internal/config"
	"vastram/internal/domain/model"
	"vastram/internal/handler"
	"vastram/internal/infra/db"
	infraRepo "vastram/internal/infra/repository"
	"vastram/internal/server"
	"vastram/internal/usecase"
	auth "vastram/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークンは短命
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, tokenVersion int, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"tv":   tokenVersion,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.LoginHistory{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.WishlistEntry{},
		&model.ShippingAddress{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderFeedback{},
		&model.Slider{},
		&model.SpecialOffer{},
		&model.AboutUs{},
		&model.Event{},
		&model.ContactQuery{},
		&model.AuditLog{},
		&model.InventoryAdjustment{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenGormRepository(gormDB)
	historyRepo := infraRepo.NewLoginHistoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	feedbackRepo := infraRepo.NewFeedbackGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	sliderRepo := infraRepo.NewSliderGormRepository(gormDB)
	offerRepo := infraRepo.NewSpecialOfferGormRepository(gormDB)
	aboutRepo := infraRepo.NewAboutUsGormRepository(gormDB)
	eventRepo := infraRepo.NewEventGormRepository(gormDB)
	contactRepo := infraRepo.NewContactQueryGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//refresh TTL
	refreshTTL := 14 * 24 * time.Hour

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, rtRepo, historyRepo, verifier, issuer, idGen, clock, refreshTTL)
	refreshUC := auth.NewRefreshUsecase(userRepo, rtRepo, issuer, idGen, clock, refreshTTL)
	logoutUC := auth.NewLogoutAllUsecase(userRepo, rtRepo)

	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo, sliderRepo, offerRepo)
	contentUC := usecase.NewContentUsecase(aboutRepo, eventRepo, contactRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager)
	orderUC := usecase.NewOrderUsecase(orderRepo, orderItemRepo, feedbackRepo)
	profileUC := usecase.NewProfileUsecase(userRepo, orderRepo, wishlistRepo)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, categoryRepo, inventoryRepo, auditRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, orderRepo, orderItemRepo, auditRepo)
	adminContentUC := usecase.NewAdminContentUsecase(sliderRepo, offerRepo, aboutRepo, eventRepo, contactRepo, auditRepo)

	cookieSecure := cfg.GoEnv != "dev"

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(registerUC, loginUC, refreshUC, logoutUC, refreshTTL, cookieSecure),
		Catalog:      handler.NewCatalogHandler(catalogUC),
		Content:      handler.NewContentHandler(contentUC),
		Cart:         handler.NewCartHandler(cartUC),
		Wishlist:     handler.NewWishlistHandler(wishlistUC, cookieSecure),
		Order:        handler.NewOrderHandler(checkoutUC, orderUC),
		Profile:      handler.NewProfileHandler(profileUC),
		AdminProduct: handler.NewAdminProductHandler(adminProductUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC),
		AdminContent: handler.NewAdminContentHandler(adminContentUC),
	}

	e := server.New(cfg, handlers, userRepo)

	//Server起動
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		if v[0] != ':' {
			addr = ":" + v
		} else {
			addr = v
		}
	}

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
