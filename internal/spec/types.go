package spec

type Config struct {
	Version   int             `yaml:"version"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Output    OutputConfig    `yaml:"output"`
	Generator GeneratorConfig `yaml:"generator"`
}

type DatasetConfig struct {
	Path   string `yaml:"path"`
	Filter string `yaml:"filter"`
}

type OutputConfig struct {
	Path string `yaml:"path"`
}

type GeneratorConfig struct {
	Seed       int64    `yaml:"seed"`
	Count      int      `yaml:"count"`
	Attributes []string `yaml:"attributes"`
}
