package main

import (
	"planfit/internal/calendar"
	calendarhandler "planfit/internal/calendar/handler"
	"planfit/internal/llm"
	planshandler "planfit/internal/plans/handler"
	plansrepo "planfit/internal/plans/repository"
	plansservice "planfit/internal/plans/service"
	plansvalidator "planfit/internal/plans/validator"
	profileshandler "planfit/internal/profiles/handler"
	profilesrepo "planfit/internal/profiles/repository"
	profilesservice "planfit/internal/profiles/service"
	profilesvalidator "planfit/internal/profiles/validator"
	schedulinghandler "planfit/internal/scheduling/handler"
	schedulingservice "planfit/internal/scheduling/service"
	schedulingvalidator "planfit/internal/scheduling/validator"
	"planfit/pkg/app"
	"planfit/pkg/config"
	"planfit/pkg/kafka"
	kafkaconfig "planfit/pkg/kafka/config"
	"planfit/pkg/locks"
)

const ServiceName = "planner"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Planner service")

	tokenStore, err := calendar.NewMongoTokenStore(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize token store", "error", err)
	}
	google := calendar.NewGoogleClient(cfg, tokenStore)
	registry := locks.NewRegistry(cfg.LockIdleTTL)
	completer := llm.NewClient(cfg)

	var publisher schedulingservice.Publisher
	var producer *kafka.Producer
	if cfg.KafkaEnabled {
		producer, err = kafka.NewProducer(kafkaconfig.Load(), cfg.KafkaScheduledTopic)
		if err != nil {
			cfg.Log.Fatal("Failed to initialize Kafka producer", "error", err)
		}
		publisher = producer
	}

	profileRepo := profilesrepo.NewMongoUserProfileRepository(cfg)
	profileService := profilesservice.NewUserProfileService(
		profileRepo,
		completer,
		profilesvalidator.NewProfileValidator(cfg.Log),
		cfg,
	)

	planRepo := plansrepo.NewMongoWorkoutPlanRepository(cfg)
	planService := plansservice.NewWorkoutPlanService(
		planRepo,
		profileRepo,
		completer,
		plansvalidator.NewPlanValidator(cfg.Log),
		cfg,
	)

	schedulerService := schedulingservice.NewSchedulerService(google, registry, publisher, cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		schedulinghandler.NewSchedulingHandler(
			schedulerService,
			planService,
			schedulingvalidator.NewSchedulingValidator(cfg.Log),
			cfg.Log,
		),
		calendarhandler.NewAuthHandler(google, cfg.Log),
		profileshandler.NewProfileHandler(profileService, cfg.Log),
		planshandler.NewPlanHandler(planService, cfg.Log),
	)
	serverApp.Run()

	if producer != nil {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
}
