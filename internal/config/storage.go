package config

import "time"

type Storage struct {
	Database Database     `envPrefix:"DATABASE_"`
	Cache    ProductCache `envPrefix:"CACHE_"`
}

type Database struct {
	DSN string `env:"DSN" envDefault:"storefront.sqlite"`
}

type ProductCache struct {
	Enabled bool          `env:"ENABLED,expand" envDefault:"true"`
	Size    int           `env:"SIZE,expand" envDefault:"512"`
	TTL     time.Duration `env:"TTL" envDefault:"30s"`
}
