package services

// ServiceContainer holds instances of all the application services.
// It is built once at startup and handed to the handlers.
type ServiceContainer struct {
	Account  AccountSvcFacade
	Balance  BalanceSvc
	Transfer TransferSvc
	Movement MovementSvcFacade
	Shift    ShiftSvcFacade
}
