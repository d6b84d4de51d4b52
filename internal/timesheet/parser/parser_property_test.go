package parser_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"calendar-timesheet/internal/timesheet/parser"
)

// genSummary assembles a summary from a project token (known, unknown
// or absent), a delimiter variant and a free-text tail, so generated
// titles cover every branch of the delimiter grammar.
func genSummary() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("", "UFSP", "BCH", "ADB25", "ZZZZ"),
		gen.OneConstOf(" * ", ": ", "*"),
		gen.AlphaString(),
	).Map(func(vals []interface{}) string {
		project := vals[0].(string)
		if project == "" {
			return vals[2].(string)
		}
		return project + vals[1].(string) + vals[2].(string)
	})
}

func TestParseProperties(t *testing.T) {
	p := parser.New(&mockLogger{}, &fakeCatalog{})
	ctx := context.Background()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("parsing is deterministic", prop.ForAll(
		func(summary string) bool {
			first, err1 := p.Parse(ctx, summary)
			second, err2 := p.Parse(ctx, summary)
			return err1 == nil && err2 == nil && reflect.DeepEqual(first, second)
		},
		genSummary(),
	))

	properties.Property("raw summary is preserved verbatim", prop.ForAll(
		func(summary string) bool {
			res, err := p.Parse(ctx, summary)
			return err == nil && res.RawSummary == summary
		},
		genSummary(),
	))

	properties.Property("excluded summaries carry no project and no errors", prop.ForAll(
		func(pattern string) bool {
			res, err := p.Parse(ctx, pattern)
			return err == nil && res.IsExcluded && res.ProjectCode == "" && len(res.Errors) == 0
		},
		gen.OneConstOf("Away", "lunch", "OUT OF OFFICE", "  Lunch  "),
	))

	properties.TestingRun(t)
}
