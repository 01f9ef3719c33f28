package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio y del pipeline.
// DATABASE_URL no es obligatoria aca porque el pipeline corre sin base;
// el servidor valida su presencia al arrancar.
type Config struct {
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL  string `env:"DATABASE_URL"`
	ArtifactPath string `env:"ARTIFACT_PATH" envDefault:"persona_results.json"`

	DataDir    string `env:"DATA_DIR" envDefault:"Data"`
	DataRounds []int  `env:"DATA_ROUNDS" envDefault:"1,2,3,4"`

	ClusterSeed     int64 `env:"CLUSTER_SEED" envDefault:"42"`
	ClusterMinK     int   `env:"CLUSTER_MIN_K" envDefault:"2"`
	ClusterMaxK     int   `env:"CLUSTER_MAX_K" envDefault:"8"`
	ClusterDefaultK int   `env:"CLUSTER_DEFAULT_K" envDefault:"5"`
	ClusterRestarts int   `env:"CLUSTER_RESTARTS" envDefault:"10"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	AdminPasswordHash   string `env:"ADMIN_PASSWORD_HASH"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	SubmitRateWindowMinutes int `env:"SUBMIT_RATE_WINDOW_MINUTES" envDefault:"1"`
	SubmitRateMax           int `env:"SUBMIT_RATE_MAX" envDefault:"10"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
