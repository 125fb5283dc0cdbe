package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"

	"kabalen/cmd"
	httpin "kabalen/internal/adapters/in/http"
	"kabalen/internal/adapters/out/postgres"
	"kabalen/internal/jobs"
	"kabalen/internal/pkg/logx"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Info("no .env file, reading configuration from environment")
	}
	configs := cmd.LoadConfig()

	logger := logx.MustNew(configs.Debug)
	defer func() {
		_ = logger.Sync()
	}()

	if err := postgres.CreateDbIfNotExists(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	); err != nil {
		logger.Fatal("database bootstrap failed", zap.Error(err))
	}

	gormDB := postgres.MustConnectDB(postgres.MakeConnectionString(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	))

	root := cmd.NewCompositionRoot(configs, gormDB)

	signer, err := root.CreateTokenSigner()
	if err != nil {
		logger.Fatal("token signer setup failed", zap.Error(err))
	}

	artifacts, err := root.CreateArtifactStore()
	if err != nil {
		logger.Fatal("artifact store setup failed", zap.Error(err))
	}

	jobManager := jobs.NewJobManager(
		root.CreateGetStalePendingOrdersQueryHandler(),
		configs.StaleThreshold,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Fatal("job startup failed", zap.Error(err))
	}
	defer jobManager.StopAll()

	server := httpin.NewServer(httpin.Deps{
		RegisterClient:    root.CreateRegisterClientCommandHandler(),
		CreateClientOrder: root.CreateCreateClientOrderCommandHandler(),
		CreateManualOrder: root.CreateCreateManualOrderCommandHandler(),
		ClaimOrder:        root.CreateClaimOrderCommandHandler(),
		CompleteOrder:     root.CreateCompleteOrderCommandHandler(),
		UploadProof:       root.CreateUploadProofCommandHandler(),
		AssignRider:       root.CreateAssignRiderCommandHandler(),
		RegisterRider:     root.CreateRegisterRiderCommandHandler(),
		AdjustCredit:      root.CreateAdjustCreditCommandHandler(),

		ClientOrders: root.CreateGetClientOrdersQueryHandler(),
		RiderBoard:   root.CreateGetRiderBoardQueryHandler(),
		AllOrders:    root.CreateGetAllOrdersQueryHandler(),
		AllRiders:    root.CreateGetAllRidersQueryHandler(),
		AuthClient:   root.CreateAuthenticateClientQueryHandler(),
		AuthRider:    root.CreateAuthenticateRiderQueryHandler(),

		Tokens:    signer,
		Artifacts: artifacts,

		AdminUsername:     configs.AdminUsername,
		AdminPasswordHash: configs.AdminPasswordHash,
	})

	e := echo.New()
	server.RegisterRoutes(e)

	logger.Info("starting http server", zap.String("port", configs.HTTPPort))
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
