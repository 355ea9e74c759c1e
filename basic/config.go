package basic

const defaultInitialCapacity = 10

type Config struct {
	// InitialCapacity 初始容量，<=0 时使用默认值 10
	InitialCapacity int
}

func NewConfig() *Config {
	return &Config{InitialCapacity: defaultInitialCapacity}
}

func (c *Config) initialCapacity() int {
	if c == nil || c.InitialCapacity <= 0 {
		return defaultInitialCapacity
	}
	return c.InitialCapacity
}
