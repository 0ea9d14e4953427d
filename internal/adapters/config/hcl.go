package config

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.trai.ch/snake/internal/core/domain"
)

// decodeHCL decodes rule blocks. Expressions may reference workdir, the directory
// holding the file, and env, the process environment.
func decodeHCL(filename string, data []byte, root string) ([]RuleDTO, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, domain.WrapKind(domain.ErrWorkflowParse, diags)
	}

	var snakefile hclSnakefile
	diags = gohcl.DecodeBody(file.Body, evalContext(root, os.Environ()), &snakefile)
	if diags.HasErrors() {
		return nil, domain.WrapKind(domain.ErrWorkflowParse, diags)
	}

	dtos := make([]RuleDTO, len(snakefile.Rules))
	for i, r := range snakefile.Rules {
		dtos[i] = RuleDTO(r)
	}
	return dtos, nil
}

func evalContext(root string, environ []string) *hcl.EvalContext {
	env := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"workdir": cty.StringVal(root),
			"env":     cty.ObjectVal(env),
		},
	}
}
