package encoder

import (
	"gopkg.in/yaml.v2"

	"github.com/combinatorial/tslcnf/groupenc"
)

// yamlDoc mirrors the on-disk shape of a run-configuration document kept
// alongside the TSL source, e.g.:
//
//	t: 2
//	k: 10
//	group_policy: auto
//	require_full_coverage: true
//	strict_conditions: true
//	antonyms:
//	  BackUp: NoBackUp
type yamlDoc struct {
	T                   int               `yaml:"t"`
	K                   int               `yaml:"k"`
	GroupPolicy         string            `yaml:"group_policy"`
	RequireFullCoverage *bool             `yaml:"require_full_coverage"`
	StrictConditions    *bool             `yaml:"strict_conditions"`
	Antonyms            map[string]string `yaml:"antonyms"`
}

// OptionsFromYAML parses a YAML configuration document into the
// equivalent slice of Option values, for callers that keep run
// configuration in a file rather than constructing Options in Go.
func OptionsFromYAML(data []byte) ([]Option, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ErrConfigError.New(err.Error())
	}

	opts := []Option{
		WithT(doc.T),
		WithK(doc.K),
	}
	if doc.RequireFullCoverage != nil {
		opts = append(opts, WithFullCoverage(*doc.RequireFullCoverage))
	}
	if doc.StrictConditions != nil {
		opts = append(opts, WithStrictConditions(*doc.StrictConditions))
	}
	if doc.GroupPolicy != "" {
		opts = append(opts, WithGroupPolicy(groupenc.Policy(doc.GroupPolicy)))
	}
	if len(doc.Antonyms) > 0 {
		opts = append(opts, WithAntonyms(doc.Antonyms))
	}
	return opts, nil
}
