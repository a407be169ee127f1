package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/ThangaBalajiS/biz-book/internal/handlers/v1/customer"
	"github.com/ThangaBalajiS/biz-book/internal/handlers/v1/dashboard"
	"github.com/ThangaBalajiS/biz-book/internal/handlers/v1/settings"
	"github.com/ThangaBalajiS/biz-book/internal/handlers/v1/statement"
	"github.com/ThangaBalajiS/biz-book/internal/handlers/v1/status"
	"github.com/ThangaBalajiS/biz-book/internal/handlers/v1/transaction"
	"github.com/ThangaBalajiS/biz-book/internal/logging"
	"github.com/ThangaBalajiS/biz-book/internal/operator"
	"github.com/ThangaBalajiS/biz-book/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("biz-book", "1.0.0"))
	humaAPI.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		logData := logging.NewLogData(r.Logger)
		next(huma.WithContext(ctx, logging.WithLogData(ctx.Context(), logData)))
	})

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)

	customer.NewCreateCustomerHandler(r.Operator).Register(humaAPI)
	customer.NewListCustomersHandler(r.Service.Customer).Register(humaAPI)
	customer.NewGetCustomerHandler(r.Service.Customer).Register(humaAPI)
	customer.NewUpdateCustomerHandler(r.Operator).Register(humaAPI)
	customer.NewDeleteCustomerHandler(r.Operator).Register(humaAPI)

	settings.NewGetSettingsHandler(r.Service.Settings).Register(humaAPI)
	settings.NewUpdateSettingsHandler(r.Operator).Register(humaAPI)

	dashboard.NewGetDashboardHandler(r.Service.Dashboard).Register(humaAPI)

	statement.NewBankStatementHandler(r.Service.Statement).Register(humaAPI)
	statement.NewAachiMasalaStatementHandler(r.Service.Statement).Register(humaAPI)
	statement.NewCustomerStatementHandler(r.Service.Statement).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
