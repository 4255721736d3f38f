package domain

// Config represents the nodesort configuration loaded from nodesort.yaml.
type Config struct {
	Locale          string
	PreviewLength   int
	SSDefaultRemark string
	Output          OutputFormat
}

// OutputFormat selects how the CLI prints a classified list.
type OutputFormat string

const (
	OutputPretty OutputFormat = "pretty"
	OutputJSON   OutputFormat = "json"
	OutputYAML   OutputFormat = "yaml"
)

// DefaultSSRemark is assigned to ss:// links that carry a payload but no fragment.
const DefaultSSRemark = "Shadowsocks Node"

// DefaultConfig provides sane defaults if nodesort.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Locale:          "und",
		PreviewLength:   20,
		SSDefaultRemark: DefaultSSRemark,
		Output:          OutputPretty,
	}
}

// WorkspaceSpec describes where a workspace should be initialized.
type WorkspaceSpec struct {
	Root string
}
