package appcontext

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/producer"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ApplicationContext struct {
	DbConn         *pgxpool.Pool
	DbDao          db.IStore
	RedisClient    *redis.Client
	Cf             *config.Config
	TokenMaker     token.Maker
	PriceCache     redis_repo.IProductPriceRepository
	OrderProducer  producer.IOrderProducer
	UserService    service.IUserService
	AuthService    service.IAuthService
	ProductService service.IProductService
	OrderService   service.IOrderService
	ChatService    service.IChatService
	ContactService service.IContactService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}

	err = app.dbInit()
	if err != nil {
		return err
	}

	err = app.setUpRedis()
	if err != nil {
		return err
	}

	err = app.setUpOrderProducer()
	if err != nil {
		return err
	}

	err = app.setTokenMaker()
	if err != nil {
		return err
	}

	err = app.setUpUserService()
	if err != nil {
		return err
	}

	err = app.setUpAuthService()
	if err != nil {
		return err
	}

	err = app.setUpProductService()
	if err != nil {
		return err
	}

	err = app.setUpOrderService()
	if err != nil {
		return err
	}

	err = app.setUpChatService()
	if err != nil {
		return err
	}

	err = app.setUpContactService()
	if err != nil {
		return err
	}

	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := pgxpool.New(context.Background(),
		fmt.Sprintf("postgresql://%s:%s@%s:%s/%s", app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName))
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewStore(app.DbConn)
	log.Printf("Finish setup database DAO")
	return nil
}

// setUpRedis redis連不上不擋啟動, 價格快取是選配
func (app *ApplicationContext) setUpRedis() error {
	if app.Cf.RedisAddr == "" {
		log.Printf("Redis not configured, price cache disabled")
		return nil
	}

	log.Printf("Start setup redis client")
	client := redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis ping failed, price cache disabled: %v", err)
		client.Close()
		return nil
	}
	app.RedisClient = client
	app.PriceCache = redis_repo.NewProductPriceRepo(client)
	log.Printf("Finish setup redis client")
	return nil
}

func (app *ApplicationContext) setUpOrderProducer() error {
	if app.Cf.KafkaBrokers == "" {
		log.Printf("Kafka not configured, order events disabled")
		return nil
	}

	log.Printf("Start setup order producer")
	brokers := strings.Split(app.Cf.KafkaBrokers, ",")
	app.OrderProducer = producer.NewOrderProducer(brokers, app.Cf.KafkaTopic)
	log.Printf("Finish setup order producer")
	return nil
}

func (app *ApplicationContext) setTokenMaker() error {
	log.Printf("Start setup token maker")

	tokenMaker, err := token.NewJWTMaker(app.Cf.AuthTokenKey)
	if err != nil {
		return fmt.Errorf("無法創建 token maker: %w", err)
	}

	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) setUpUserService() error {
	log.Printf("Start setup user service")
	app.UserService = service.NewUserService(app.DbDao)
	log.Printf("Finish setup user service")
	return nil
}

func (app *ApplicationContext) setUpAuthService() error {
	log.Printf("Start setup auth service")
	app.AuthService = service.NewAuthService(app.UserService, app.TokenMaker)
	log.Printf("Finish setup auth service")
	return nil
}

func (app *ApplicationContext) setUpProductService() error {
	log.Printf("Start setup product service")
	app.ProductService = service.NewProductService(app.DbDao, app.PriceCache)
	log.Printf("Finish setup product service")
	return nil
}

func (app *ApplicationContext) setUpOrderService() error {
	log.Printf("Start setup order service")
	app.OrderService = service.NewOrderService(app.DbDao, app.ProductService, app.OrderProducer, app.Cf.AllowPartialOrder)
	log.Printf("Finish setup order service")
	return nil
}

func (app *ApplicationContext) setUpChatService() error {
	log.Printf("Start setup chat service")
	app.ChatService = service.NewChatService(app.DbDao)
	log.Printf("Finish setup chat service")
	return nil
}

func (app *ApplicationContext) setUpContactService() error {
	log.Printf("Start setup contact service")
	app.ContactService = service.NewContactService(app.DbDao)
	log.Printf("Finish setup contact service")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	// buffered, timeout後背景goroutine才不會卡在送出結果
	done := make(chan error, 1)
	go func() {
		defer close(done)

		if app.OrderProducer != nil {
			log.Printf("Closing order producer...")
			if err := app.OrderProducer.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("order producer shutdown error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis client shutdown error: %v", err)
			}
		}

		// 關閉 DB
		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			app.DbConn.Close()
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}

// dbInit db migration
func (app *ApplicationContext) dbInit() error {
	log.Printf("Start setup db init")

	err := runDBMigration(
		app.Cf.MigrationURL,
		fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName),
	)
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	log.Printf("Finish setup db init")
	return nil
}

func runDBMigration(migrationURL string, dbSource string) error {
	migrateion, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}

	return migrateion.Up()
}
