package service

import (
	"github.com/MKhiriev/employee-registry/internal/config"
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/store"
)

type Services struct {
	AuthService     AuthService
	EmployeeService EmployeeService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(cfg, logger),
		EmployeeService: NewEmployeeService(storages.EmployeeRepository, logger),
	}
}
