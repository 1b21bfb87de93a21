// Package config loads the service configuration from the environment.
//
// Values are resolved in priority order: OS environment, then a .env file in
// the working directory, then the defaults declared on the struct tags.
// Configuration is loaded once at startup and not modified afterwards.
package config

import "time"

type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"oneof=local dev prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`
	LogFile     string `envconfig:"LOG_FILE"`

	Server ServerConfig
	Store  StoreConfig
	Map    MapConfig
	Export ExportConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"5s"`
	ReadTimeout       time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout      time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout       time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`

	// Run the OS URL handler for the external map flow instead of only returning the link.
	OpenURLs bool `envconfig:"OPEN_URLS" default:"false"`
}

type StoreConfig struct {
	Driver      string `envconfig:"STORE_DRIVER" default:"memory" validate:"oneof=memory postgres sqlite"`
	DatabaseURL string `envconfig:"DATABASE_URL" validate:"required_if=Driver postgres"`
	DBPath      string `envconfig:"DB_PATH" default:"data/points.db" validate:"required_if=Driver sqlite"`
	SeedPath    string `envconfig:"SEED_PATH"`
}

type MapConfig struct {
	TileURL     string  `envconfig:"MAP_TILE_URL" default:"https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}" validate:"required"`
	Attribution string  `envconfig:"MAP_TILE_ATTRIBUTION" default:"Esri"`
	Zoom        int     `envconfig:"MAP_ZOOM" default:"13" validate:"min=1,max=20"`
	CenterLat   float64 `envconfig:"MAP_CENTER_LAT" default:"47.504105491592426" validate:"latitude"`
	CenterLon   float64 `envconfig:"MAP_CENTER_LON" default:"19.046773410517797" validate:"longitude"`
}

type ExportConfig struct {
	Dir string `envconfig:"EXPORT_DIR" default:"exports" validate:"required"`
}
