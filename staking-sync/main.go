package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"puck-staking/caching"
	"puck-staking/goutils/ethclient"
	"puck-staking/goutils/health"
	"puck-staking/goutils/httpclient"
	"puck-staking/goutils/logger"
	"puck-staking/goutils/redisutils"
	"puck-staking/goutils/reporting"
	"puck-staking/goutils/settings"
	"puck-staking/goutils/smartcontract"
	"puck-staking/goutils/smartcontract/transactions"
	taskmgr "puck-staking/goutils/taskmgr/rabbitmq"
	"puck-staking/staking-sync/catalogue"
	"puck-staking/staking-sync/ledger"
	"puck-staking/staking-sync/renderer"
	"puck-staking/staking-sync/service"
	"puck-staking/staking-sync/worker"
)

func main() {
	logger.InitLogger()

	settingsObj := settings.ParseSettings()

	ethService, ethClient := ethclient.NewClient(settingsObj)

	contractAPI := smartcontract.InitContractAPI(settingsObj.StakingContractAddress, ethClient)
	txManager := transactions.NewTxManager(settingsObj, ethService)
	gateway := ledger.NewContractGateway(settingsObj, contractAPI, txManager)

	diskCache := caching.InitDiskCache()

	tokenCatalogue, err := catalogue.Load(diskCache, settingsObj.Catalogue.Path)
	if err != nil {
		log.WithError(err).Fatal("failed to load token catalogue")
	}

	_, err = tokenCatalogue.RewardToken()
	if err != nil {
		log.WithError(err).Warn("rewards will be rendered with the default scale")
	}

	resolver := catalogue.NewMetadataResolver(
		httpclient.GetDefaultHTTPClient(settingsObj),
		settingsObj.Catalogue.MetadataBaseURL,
		settingsObj.Concurrency,
	)
	tokenCatalogue = tokenCatalogue.WithMetadata(resolver.Resolve(context.Background(), tokenCatalogue))

	redisClient := redisutils.InitRedisClient(settingsObj.Redis)
	redisCache := caching.NewRedisCache(redisClient, redisClient)

	mqTaskMgr := taskmgr.NewRabbitmqTaskMgr(settingsObj)

	account := gateway.Account().Hex()

	snapshotRenderer := renderer.Multi{
		renderer.NewRedisRenderer(redisCache, account),
		renderer.NewEventRenderer(settingsObj, mqTaskMgr),
		renderer.NewDiskRenderer(diskCache, settingsObj.LocalCachePath, account),
		renderer.LogRenderer{},
	}

	reporter := reporting.InitIssueReporter(settingsObj)

	controller := service.NewController(settingsObj, gateway, tokenCatalogue, snapshotRenderer, reporter)

	statusReader := service.NewStatusReader(controller, redisCache, account, settingsObj.Healthcheck.RecentActions)

	// health check is non-blocking health check http listener
	health.HealthCheck(settingsObj.Healthcheck, controller.Healthy, statusReader.Details)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go controller.Run(ctx, time.Duration(settingsObj.RunIntervalSecs)*time.Second)

	mqWorker := worker.NewWorker(controller, mqTaskMgr)

	shutdown := func() {
		_ = mqWorker.ShutdownWorker()

		controller.FlushReports()

		err := redisClient.Close()
		if err != nil {
			log.WithError(err).Error("error while closing redis client")
		}
	}

	log.WithField("account", account).
		WithField("tokens", len(tokenCatalogue.Tokens())).
		Info("staking sync started")

	err = mqWorker.ConsumeTask(ctx)

	shutdown()

	if err != nil {
		log.WithError(err).Fatal("staking action worker stopped with error")
	}
}
