package config

import (
	"go.trai.ch/snake/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func decodeYAML(data []byte) ([]RuleDTO, error) {
	var snakefile Snakefile
	if err := yaml.Unmarshal(data, &snakefile); err != nil {
		return nil, domain.WrapKind(domain.ErrWorkflowParse, err)
	}
	return snakefile.Rules, nil
}
