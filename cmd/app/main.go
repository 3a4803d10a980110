package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"github.com/werbeauty/beauty-shop-backend/internal/cart"
	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
	"github.com/werbeauty/beauty-shop-backend/internal/config"
	"github.com/werbeauty/beauty-shop-backend/internal/favorite"
	"github.com/werbeauty/beauty-shop-backend/internal/mailer"
	"github.com/werbeauty/beauty-shop-backend/internal/order"
	"github.com/werbeauty/beauty-shop-backend/internal/recommend"
	"github.com/werbeauty/beauty-shop-backend/internal/review"
	"github.com/werbeauty/beauty-shop-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(requestLogger)

	var (
		catalogRepo  catalog.Repository
		userRepo     user.Repository
		cartRepo     cart.Repository
		favoriteRepo favorite.Repository
		orderRepo    order.Repository
		reviewRepo   review.Repository
	)

	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		bootstrapSchema(db)
		seedCatalogIfEmpty(db)

		catalogRepo = catalog.NewPostgresRepository(db)
		userRepo = user.NewPostgresRepository(db)
		cartRepo = cart.NewPostgresRepository(db)
		favoriteRepo = favorite.NewPostgresRepository(db)
		orderRepo = order.NewPostgresRepository(db)
		reviewRepo = review.NewPostgresRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage")
		catalogRepo = catalog.NewInMemoryRepository(catalog.DefaultWomenProducts, catalog.DefaultMenProducts)
		userRepo = user.NewInMemoryRepository(nil)
		cartRepo = cart.NewInMemoryRepository()
		favoriteRepo = favorite.NewInMemoryRepository()
		orderRepo = order.NewInMemoryRepository()
		reviewRepo = review.NewInMemoryRepository()
	}

	catalogService := catalog.NewService(catalogRepo)
	userService := user.NewService(userRepo, mailer.NewLogMailer())
	cartService := cart.NewService(cartRepo, catalogService)
	favoriteService := favorite.NewService(favoriteRepo, catalogService)
	orderService := order.NewService(orderRepo, cartService, cfg)
	reviewService := review.NewService(reviewRepo, catalogService)
	recommendService := recommend.NewService(catalogService, userService, cartService, favoriteService)

	catalogHandler := catalog.NewHandler(catalogService)
	userHandler := user.NewHandler(userService)
	cartHandler := cart.NewHandler(cartService)
	favoriteHandler := favorite.NewHandler(favoriteService)
	orderHandler := order.NewHandler(orderService)
	reviewHandler := review.NewHandler(reviewService, userService)
	recommendHandler := recommend.NewHandler(recommendService)

	catalogHandler.RegisterPublicRoutes(app)
	recommendHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)
	userHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	favoriteHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)
	recommendHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s %d %v", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	return db
}

func bootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			email TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			name TEXT,
			gender TEXT,
			view_history text[] NOT NULL DEFAULT ARRAY[]::text[],
			favorite_product_ids text[] NOT NULL DEFAULT ARRAY[]::text[],
			cart jsonb NOT NULL DEFAULT '[]',
			must_change_password BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS product (
			product_id TEXT PRIMARY KEY,
			segment TEXT NOT NULL,
			product_name TEXT NOT NULL,
			category TEXT NOT NULL,
			price double precision NOT NULL,
			description TEXT,
			image TEXT,
			rating double precision NOT NULL DEFAULT 0,
			popularity INT NOT NULL DEFAULT 0,
			badge TEXT,
			skin_type TEXT,
			hair_type TEXT,
			ingredients text[] NOT NULL DEFAULT ARRAY[]::text[],
			ord INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			items jsonb NOT NULL DEFAULT '[]',
			subtotal numeric NOT NULL DEFAULT 0,
			discount numeric NOT NULL DEFAULT 0,
			shipping numeric NOT NULL DEFAULT 0,
			tax numeric NOT NULL DEFAULT 0,
			total numeric NOT NULL DEFAULT 0,
			promo_code TEXT,
			shipping_method TEXT,
			full_name TEXT,
			address TEXT,
			city TEXT,
			zip TEXT,
			country TEXT,
			status TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			product_id TEXT NOT NULL,
			email TEXT NOT NULL,
			author TEXT,
			rating double precision NOT NULL,
			comment TEXT,
			created_at TEXT,
			PRIMARY KEY (product_id, email)
		)`,
		`CREATE INDEX IF NOT EXISTS orders_email_idx ON orders (email)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("bootstrap schema: %v", err)
		}
	}
}

func seedCatalogIfEmpty(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM product`).Scan(&count); err != nil {
		log.Fatalf("count products: %v", err)
	}
	if count > 0 {
		return
	}

	insert := func(segment string, products []catalog.Product) {
		for i, p := range products {
			_, err := db.Exec(`INSERT INTO product
				(product_id, segment, product_name, category, price, description, image,
				rating, popularity, badge, skin_type, hair_type, ingredients, ord)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
				p.ID, segment, p.Name, p.Category, p.Price, p.Description, p.Image,
				p.Rating, p.Popularity, p.Badge, p.SkinType, p.HairType, pq.StringArray(p.Ingredients), i)
			if err != nil {
				log.Fatalf("seed product %s: %v", p.ID, err)
			}
		}
	}
	insert(catalog.SegmentWomen, catalog.DefaultWomenProducts)
	insert(catalog.SegmentMen, catalog.DefaultMenProducts)
	log.Printf("seeded catalog with %d products", len(catalog.DefaultWomenProducts)+len(catalog.DefaultMenProducts))
}
