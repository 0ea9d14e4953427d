package config

// Snakefile is the YAML form of a workflow file.
type Snakefile struct {
	Version string    `yaml:"version"`
	Rules   []RuleDTO `yaml:"rules"`
}

// RuleDTO is one rule as declared in a YAML workflow file.
type RuleDTO struct {
	Outputs []string `yaml:"outputs"`
	Inputs  []string `yaml:"inputs"`
	Cmd     string   `yaml:"cmd"`
}

// hclSnakefile is the HCL form of a workflow file.
type hclSnakefile struct {
	Version string    `hcl:"version,optional"`
	Rules   []hclRule `hcl:"rule,block"`
}

type hclRule struct {
	Outputs []string `hcl:"outputs,optional"`
	Inputs  []string `hcl:"inputs,optional"`
	Cmd     string   `hcl:"cmd"`
}
