package services

import (
	portsrepo "github.com/monetario-app/monetario/internal/core/ports/repositories"
	portssvc "github.com/monetario-app/monetario/internal/core/ports/services"
	"github.com/monetario-app/monetario/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Group = NewGroupService(repos.GroupRepo, repos.UserRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo, repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo, repos.UserRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.CurrencyRepo)
	container.Record = NewRecordService(repos.RecordRepo, repos.AccountRepo, repos.CategoryRepo, repos.CurrencyRepo)
	container.Transfer = NewTransferService(repos.TransferRepo, repos.AccountRepo, repos.CurrencyRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransferSvcFacade = (*transferService)(nil)
	_ portssvc.RecordSvcFacade   = (*recordService)(nil)
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
)
