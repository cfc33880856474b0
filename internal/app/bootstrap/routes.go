// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/Elikson/fucapi-backend/internal/app/features/health"
	schooldatafeature "github.com/Elikson/fucapi-backend/internal/app/features/schooldata"
	usersfeature "github.com/Elikson/fucapi-backend/internal/app/features/users"
	"github.com/Elikson/fucapi-backend/internal/app/system/mailer"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app. WAFFLE calls it after configuration, DB connection, schema setup,
// and Startup have completed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	smtp := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		Username: appCfg.MailSMTPUser,
		Password: appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// School records, nested disciplinas, and the user materias endpoint
	schoolDataHandler := schooldatafeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/schooldata", schooldatafeature.Routes(schoolDataHandler))

	// Email-addressed user operations and password recovery
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, smtp, appCfg.BaseURL, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	return r, nil
}
