package sweep

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
	"github.com/zhulik/wildkmp/internal/core"
	"github.com/zhulik/wildkmp/pkg/randseq"
	"github.com/zhulik/wildkmp/pkg/rangeparser"
	"github.com/zhulik/wildkmp/pkg/yaml"
)

// Suite is a group of cases sharing pattern lengths and series layout. Every
// combination of text size, alphabet size and wildcard count is one case.
type Suite struct {
	Name           string `yaml:"name"`
	TextSizes      []int  `yaml:"text_sizes"`
	AlphabetSizes  []int  `yaml:"alphabet_sizes"`
	Wildcards      []int  `yaml:"wildcards"`
	PatternLengths string `yaml:"pattern_lengths"`
	BruteForce     bool   `yaml:"brute_force"`
	Suffix         string `yaml:"suffix"`
}

type Plan struct {
	Suites []Suite `yaml:"suites"`
}

// Case is one result file worth of measurements.
type Case struct {
	Suite        string
	TextSize     int
	AlphabetSize int
	Wildcards    int
	Lengths      []int
	BruteForce   bool
	Suffix       string
}

func (c Case) Filename() string {
	return "text_size_" + strconv.Itoa(c.TextSize) +
		"_alphabet_size_" + strconv.Itoa(c.AlphabetSize) +
		"_magic_symbols_" + strconv.Itoa(c.Wildcards) +
		"__" + c.Suffix + core.ResultExtension
}

func DefaultPlan() *Plan {
	wildcards := []int{0, 1, 2, 3, 4}

	return &Plan{
		Suites: []Suite{
			{
				Name:           "requested",
				TextSizes:      []int{10_000, 100_000},
				AlphabetSizes:  []int{2, 4},
				Wildcards:      wildcards,
				PatternLengths: "100-3000/100",
				BruteForce:     true,
			},
			{
				Name:           "kmp",
				TextSizes:      []int{1_000_000},
				AlphabetSizes:  []int{2, 4},
				Wildcards:      wildcards,
				PatternLengths: "2%-50%/2%",
				Suffix:         "kmp",
			},
		},
	}
}

func LoadPlan(filename string) (*Plan, error) {
	plan, err := yaml.UnmarshalStrictFromFile[Plan](filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidPlan, err)
	}

	_, err = plan.Cases()
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// Cases expands the plan in execution order: suites as listed, then text
// sizes, alphabet sizes and wildcard counts.
func (p *Plan) Cases() ([]Case, error) {
	if len(p.Suites) == 0 {
		return nil, fmt.Errorf("%w: no suites", core.ErrInvalidPlan)
	}

	names := lo.Map(p.Suites, func(s Suite, _ int) string { return s.Name })
	if len(lo.Uniq(names)) != len(names) {
		return nil, fmt.Errorf("%w: suite names must be unique", core.ErrInvalidPlan)
	}

	var cases []Case

	for _, suite := range p.Suites {
		suiteCases, err := suite.cases()
		if err != nil {
			return nil, fmt.Errorf("%w: suite %q: %w", core.ErrInvalidPlan, suite.Name, err)
		}

		cases = append(cases, suiteCases...)
	}

	return cases, nil
}

func (s Suite) cases() ([]Case, error) {
	if s.Name == "" {
		return nil, errors.New("name is required")
	}

	if len(s.TextSizes) == 0 || len(s.AlphabetSizes) == 0 || len(s.Wildcards) == 0 {
		return nil, errors.New("text_sizes, alphabet_sizes and wildcards must not be empty")
	}

	for _, size := range s.AlphabetSizes {
		if _, err := randseq.Alphabet(size); err != nil {
			return nil, err
		}
	}

	if slices.Min(s.Wildcards) < 0 {
		return nil, errors.New("negative wildcard count")
	}

	var cases []Case

	for _, textSize := range s.TextSizes {
		if textSize < 1 {
			return nil, fmt.Errorf("text size must be positive, got %d", textSize)
		}

		lengths, err := rangeparser.Parse(s.PatternLengths, textSize)
		if err != nil {
			return nil, err
		}

		if lengths.Start < slices.Max(s.Wildcards) {
			return nil, fmt.Errorf("%w: shortest pattern %d", randseq.ErrTooManyWildcards, lengths.Start)
		}

		for _, alphabetSize := range s.AlphabetSizes {
			for _, wildcards := range s.Wildcards {
				cases = append(cases, Case{
					Suite:        s.Name,
					TextSize:     textSize,
					AlphabetSize: alphabetSize,
					Wildcards:    wildcards,
					Lengths:      lengths.Lengths(),
					BruteForce:   s.BruteForce,
					Suffix:       s.Suffix,
				})
			}
		}
	}

	return cases, nil
}
