package config

type HTTP struct {
	BaseURL   string    `env:"BASE_URL,expand" envDefault:"/"`
	Address   string    `env:"ADDRESS,expand" envDefault:":3003"`
	Session   Session   `envPrefix:"SESSION_"`
	Auth      Auth      `envPrefix:"AUTH_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

type Session struct {
	Key string `env:"KEY,expand" envDefault:"insecure-dev-session-key"`
}

type Auth struct {
	Admin User `envPrefix:"ADMIN_"`
}

type User struct {
	Username string `env:"USERNAME,expand" envDefault:"admin"`
	Password string `env:"PASSWORD,expand"`
}

type RateLimit struct {
	Enabled  bool    `env:"ENABLED,expand" envDefault:"true"`
	Rate     float64 `env:"RATE,expand" envDefault:"10"`
	MaxBurst int     `env:"MAX_BURST,expand" envDefault:"20"`
}
