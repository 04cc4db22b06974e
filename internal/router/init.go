package router

import (
	userapp "github.com/rizkypratama/user-crud-api/internal/application"
	"github.com/rizkypratama/user-crud-api/internal/container"
	repouser "github.com/rizkypratama/user-crud-api/internal/domain/repository"
	mongoinfra "github.com/rizkypratama/user-crud-api/internal/infrastructure/mongodb"
	handlers "github.com/rizkypratama/user-crud-api/internal/interface/http"
	"github.com/rizkypratama/user-crud-api/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := mongoinfra.NewUserRepository(
		container.GetMongoDatabase(),
		container.GetConfig().MongoCollection,
	)
	service := userapp.NewService(repo)
	handler := handlers.NewUserHandler(service, container.GetRules(), container.GetLogger())

	return UserModuleDeps{Repo: repo, Service: service, Handler: handler}
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewHomeModule())
	r.Add(modules.NewUserModule(userDeps.Handler))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
