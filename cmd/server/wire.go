//go:build wireinject

package main

import (
	"github.com/HinduAI/Nara/internal/domain"
	"github.com/HinduAI/Nara/internal/infrastructure"
	"github.com/HinduAI/Nara/internal/interfaces"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
