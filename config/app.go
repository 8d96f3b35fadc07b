package config

type App struct {
	Port     string `envconfig:"PORT" default:"5000"`
	MongoURI string `envconfig:"MONGODB_URI" required:"true"`
	MongoDB  string `envconfig:"MONGODB_DATABASE" default:"library"`
	Env      string `envconfig:"APP_ENV" default:"dev"`
}
