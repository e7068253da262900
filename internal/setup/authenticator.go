package setup

import (
	"context"

	"github.com/marchand/storefront/internal/config"
	"github.com/marchand/storefront/internal/http/middleware/session"
)

var getAuthenticatorFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*session.Authenticator, error) {
	users := []session.User{}

	if conf.HTTP.Auth.Admin.Username != "" && conf.HTTP.Auth.Admin.Password != "" {
		users = append(users, session.User{
			Username: conf.HTTP.Auth.Admin.Username,
			Password: conf.HTTP.Auth.Admin.Password,
		})
	}

	return session.NewAuthenticator(conf.HTTP.Session.Key, users...), nil
})
