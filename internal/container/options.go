// Package container wires the application graph through a samber/do
// injector. Each XxxPackage registers the lazy providers for one concern.
package container

// Options is the humacli-parsed service configuration.
type Options struct {
	Port           int    `default:"8888"           help:"Port to listen on"                                         short:"p"`
	BaseURL        string `default:""               help:"Public base URL for generated links (defaults to http://localhost:<port>)"`
	Backend        string `default:"redis"          enum:"redis,postgres,memory"                                     help:"Key-value backend"`
	RedisAddr      string `default:"localhost:6379" help:"Redis server address"                                      short:"r"`
	PostgresDSN    string `default:""               help:"Postgres connection string, required for the postgres backend"`
	MemoryCapacity int    `default:"1000"           help:"Key capacity of the memory backend, 0 for unbounded"`
	LogFormat      string `default:"console"        enum:"console,json"                                              help:"Log output format"`
}
