package config

// YAMLConfig is the on-disk shape of nodesort.yaml.
type YAMLConfig struct {
	NodeSort YAMLNodeSort `yaml:"nodesort"`
}

type YAMLNodeSort struct {
	Locale          string `yaml:"locale"`
	PreviewLength   *int   `yaml:"preview_length"`
	SSDefaultRemark string `yaml:"ss_default_remark"`
	Output          string `yaml:"output"`
}
