package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ThangaBalajiS/biz-book/api"
	"github.com/ThangaBalajiS/biz-book/internal/config"
	"github.com/ThangaBalajiS/biz-book/internal/logging"
	"github.com/ThangaBalajiS/biz-book/internal/operator"
	"github.com/ThangaBalajiS/biz-book/internal/service"
	"github.com/ThangaBalajiS/biz-book/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("biz-book starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
