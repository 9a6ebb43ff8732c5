package main

import (
	"context"
	"log"

	"travel-booking-service/config"
	bookingHandler "travel-booking-service/internal/module/booking/handler"
	bookingRepositories "travel-booking-service/internal/module/booking/repositories"
	bookingUsecases "travel-booking-service/internal/module/booking/usecases"
	catalogHandler "travel-booking-service/internal/module/catalog/handler"
	catalogRepositories "travel-booking-service/internal/module/catalog/repositories"
	catalogUsecases "travel-booking-service/internal/module/catalog/usecases"
	feedbackHandler "travel-booking-service/internal/module/feedback/handler"
	feedbackRepositories "travel-booking-service/internal/module/feedback/repositories"
	feedbackUsecases "travel-booking-service/internal/module/feedback/usecases"
	ideaHandler "travel-booking-service/internal/module/idea/handler"
	ideaRepositories "travel-booking-service/internal/module/idea/repositories"
	ideaUsecases "travel-booking-service/internal/module/idea/usecases"
	paymentHandler "travel-booking-service/internal/module/payment/handler"
	paymentRepositories "travel-booking-service/internal/module/payment/repositories"
	paymentUsecases "travel-booking-service/internal/module/payment/usecases"
	sellerHandler "travel-booking-service/internal/module/seller/handler"
	sellerRepositories "travel-booking-service/internal/module/seller/repositories"
	sellerUsecases "travel-booking-service/internal/module/seller/usecases"
	userHandler "travel-booking-service/internal/module/user/handler"
	userRepositories "travel-booking-service/internal/module/user/repositories"
	userUsecases "travel-booking-service/internal/module/user/usecases"
	"travel-booking-service/internal/pkg/database"
	"travel-booking-service/internal/pkg/gateway"
	"travel-booking-service/internal/pkg/http"
	"travel-booking-service/internal/pkg/httpclient"
	logInternal "travel-booking-service/internal/pkg/log"
	"travel-booking-service/internal/pkg/messagestream"
	"travel-booking-service/internal/pkg/middleware"
	redisPkg "travel-booking-service/internal/pkg/redis"
	"travel-booking-service/internal/pkg/scheduler"
	router "travel-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, messageRouter := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(messageRouter)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redisPkg.SetupClient(&cfg.Redis)
	// init logger
	logger := logInternal.Setup()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	// init payment gateway
	gw := gateway.New(&cfg.Gateway, httpClient)
	// init distributed lock
	rs := redsync.New(goredis.NewPool(redisClient))

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Ctx(ctx).Fatal("Failed to create subscriber")
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Fatal("Failed to create publisher")
	}

	// init scheduler
	sched := scheduler.Scheduler{Log: logger}
	asynqClient := sched.InitClient(&cfg.Redis)
	asynqInspector := sched.InitInspector(&cfg.Redis)

	validate := validator.New()

	bookingRepo := bookingRepositories.New(db, logger, asynqClient, asynqInspector)
	bookingUsecase := bookingUsecases.New(bookingRepo, logger, publisher, &cfg.Booking)
	handlerBooking := bookingHandler.BookingHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	paymentRepo := paymentRepositories.New(db, logger, redisClient, rs)
	paymentUsecase := paymentUsecases.New(gw, paymentRepo, logger)
	handlerPayment := paymentHandler.PaymentHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   paymentUsecase,
	}

	catalogRepo := catalogRepositories.New(db, logger, redisClient)
	catalogUsecase := catalogUsecases.New(catalogRepo, logger)
	handlerCatalog := catalogHandler.CatalogHandler{
		Log:     logger,
		Usecase: catalogUsecase,
	}

	userRepo := userRepositories.New(db, logger)
	userUsecase := userUsecases.New(userRepo, logger)
	handlerUser := userHandler.UserHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   userUsecase,
	}

	sellerRepo := sellerRepositories.New(db, logger)
	sellerUsecase := sellerUsecases.New(sellerRepo, logger)
	handlerSeller := sellerHandler.SellerHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   sellerUsecase,
	}

	ideaRepo := ideaRepositories.New(db, logger, httpClient, &cfg.AiScorer)
	ideaUsecase := ideaUsecases.New(ideaRepo, logger)
	handlerIdea := ideaHandler.IdeaHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   ideaUsecase,
	}

	feedbackRepo := feedbackRepositories.New(db, logger)
	feedbackUsecase := feedbackUsecases.New(feedbackRepo, logger)
	handlerFeedback := feedbackHandler.FeedbackHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   feedbackUsecase,
	}

	mw := middleware.Middleware{
		Log: logger,
		Cfg: cfg,
	}

	var messageRouters []*message.Router

	consumeBookingEventsRouter, err := messagestream.NewRouter(publisher, "poisoned_queue", "booking_events_handler", bookingUsecases.TopicBookingEvents, subscriber, handlerBooking.ConsumeBookingEvents)
	if err != nil {
		logger.Ctx(ctx).Fatal("Failed to create booking_events router")
	}
	messageRouters = append(messageRouters, consumeBookingEventsRouter)

	// payment expiry worker
	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeBookingPaymentExpired},
		[]func(ctx context.Context, t *asynq.Task) error{handlerBooking.SetBookingExpired},
	)
	go sched.StartMonitoring(&cfg.Redis)

	serverHttp := http.SetupHttpEngine()

	handlers := router.Handlers{
		Booking:  &handlerBooking,
		Payment:  &handlerPayment,
		Catalog:  &handlerCatalog,
		User:     &handlerUser,
		Seller:   &handlerSeller,
		Idea:     &handlerIdea,
		Feedback: &handlerFeedback,
	}

	r := router.Initialize(serverHttp, &handlers, &mw)

	return r, messageRouters

}
