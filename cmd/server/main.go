package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	ohttp "order-intake/internal/controllers/http"
	mmysql "order-intake/internal/infra/mysql"
	"order-intake/internal/infra/rabbitmq"
	"order-intake/internal/repository"
	"order-intake/internal/repository/memory"
	mysqlrepo "order-intake/internal/repository/mysql"
	"order-intake/internal/services"
)

func main() {
	var repo repository.OrderRepository
	if os.Getenv("MYSQL_HOST") != "" {
		db, err := mmysql.NewMySQLFromEnv()
		if err != nil {
			log.Fatalf("db: connect: %v", err)
		}
		repo = mysqlrepo.NewOrderRepository(db)
	} else {
		repo = memory.NewOrderRepository()
	}

	var publisher rabbitmq.PublisherInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		pub, err := rabbitmq.NewPublisher(url, "order.exchange")
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer pub.Close()
		publisher = pub
	}

	s := services.NewOrderService(repo, publisher)

	var redisClient *redis.Client
	if host := os.Getenv("REDIS_HOST"); host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: host + ":6379",
			DB:   0,
		})
	}

	handler := ohttp.NewHandler(s, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), ohttp.CORS())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Starting order intake service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
